package roles

import "sort"

// Role is an enumerated user role tag matching the backend ENUM values.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleCoach          Role = "coach"
	RoleAthlete        Role = "athlete"
	RoleParent         Role = "parent"
	RoleHealthCoach    Role = "health_coach"
	RoleTeamCoach      Role = "team_coach"
	RoleFrontDeskStaff Role = "front_desk_staff"
)

// Section is a navigable section of the application.
type Section string

const (
	SectionHome          Section = "home"
	SectionSessions      Section = "sessions"
	SectionSchedule      Section = "schedule"
	SectionAthletes      Section = "athletes"
	SectionDrills        Section = "drills"
	SectionPracticePlans Section = "practicePlans"
	SectionEvaluations   Section = "evaluations"
	SectionGoals         Section = "goals"
	SectionHealth        Section = "health"
	SectionNutrition     Section = "nutrition"
	SectionWorkouts      Section = "workouts"
	SectionVideo         Section = "video"
	SectionMessages      Section = "messages"
	SectionNotifications Section = "notifications"
	SectionReports       Section = "reports"
	SectionFinance       Section = "finance"
	SectionPOS           Section = "pos"
	SectionShop          Section = "shop"
	SectionHR            Section = "hr"
	SectionAdmin         Section = "admin"
	SectionProfile       Section = "profile"
	SectionStats         Section = "stats"
	SectionTeamRoster    Section = "teamRoster"
	SectionCampCheckin   Section = "campCheckin"
)

// roleSections enumerates every role independently. Admin is listed in full
// on purpose; deriving it from the section constants would silently grant
// access to sections added later.
var roleSections = map[Role][]Section{
	RoleAdmin: {
		SectionHome, SectionSessions, SectionSchedule, SectionAthletes,
		SectionDrills, SectionPracticePlans, SectionEvaluations, SectionGoals,
		SectionHealth, SectionNutrition, SectionWorkouts, SectionVideo,
		SectionMessages, SectionNotifications, SectionReports, SectionFinance,
		SectionPOS, SectionShop, SectionHR, SectionAdmin, SectionProfile,
		SectionStats, SectionTeamRoster, SectionCampCheckin,
	},
	RoleCoach: {
		SectionHome, SectionSessions, SectionSchedule, SectionAthletes,
		SectionDrills, SectionPracticePlans, SectionEvaluations, SectionGoals,
		SectionVideo, SectionMessages, SectionNotifications, SectionReports,
		SectionProfile, SectionStats, SectionTeamRoster,
	},
	RoleHealthCoach: {
		SectionHome, SectionSessions, SectionSchedule, SectionAthletes,
		SectionDrills, SectionPracticePlans, SectionEvaluations, SectionGoals,
		SectionHealth, SectionNutrition, SectionWorkouts, SectionVideo,
		SectionMessages, SectionNotifications, SectionReports, SectionProfile,
		SectionStats,
	},
	RoleTeamCoach: {
		SectionHome, SectionSessions, SectionSchedule, SectionAthletes,
		SectionEvaluations, SectionGoals, SectionVideo, SectionMessages,
		SectionNotifications, SectionProfile, SectionStats, SectionTeamRoster,
	},
	RoleAthlete: {
		SectionHome, SectionSessions, SectionSchedule, SectionEvaluations,
		SectionGoals, SectionHealth, SectionNutrition, SectionWorkouts,
		SectionVideo, SectionMessages, SectionNotifications, SectionShop,
		SectionProfile, SectionStats,
	},
	RoleParent: {
		SectionHome, SectionSessions, SectionSchedule, SectionMessages,
		SectionNotifications, SectionShop, SectionProfile, SectionCampCheckin,
	},
	RoleFrontDeskStaff: {
		SectionHome, SectionSessions, SectionSchedule, SectionPOS,
		SectionMessages, SectionNotifications, SectionProfile,
		SectionCampCheckin,
	},
}

// CanAccess reports whether at least one of the given roles grants access to
// the section. Unknown roles grant nothing.
func CanAccess(rs []Role, section Section) bool {
	for _, r := range rs {
		for _, s := range roleSections[r] {
			if s == section {
				return true
			}
		}
	}
	return false
}

// AccessibleSections returns the union of sections reachable by any of the
// given roles. The result is sorted for deterministic output; an empty or
// unknown role set yields an empty slice.
func AccessibleSections(rs []Role) []Section {
	seen := make(map[Section]struct{})
	for _, r := range rs {
		for _, s := range roleSections[r] {
			seen[s] = struct{}{}
		}
	}

	sections := make([]Section, 0, len(seen))
	for s := range seen {
		sections = append(sections, s)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i] < sections[j] })
	return sections
}
