package club

import "github.com/arcticwolves/clubkit/core/apiclient"

// Client bundles all backend services over a shared API client.
type Client struct {
	Auth          *AuthService
	Sessions      *SessionsService
	Athletes      *AthletesService
	Drills        *DrillsService
	PracticePlans *PracticePlansService
	Evaluations   *EvaluationsService
	Messages      *MessagesService
	Notifications *NotificationsService
	Teams         *TeamsService
	Rosters       *RostersService
	GamePlans     *GamePlansService
	Dashboard     *DashboardService
	Reports       *ReportsService
	Finance       *FinanceService
	HR            *HRService
	Health        *HealthService
	Video         *VideoService
	Shop          *ShopService
	Admin         *AdminService
}

// New creates the service bundle.
func New(api *apiclient.Client) *Client {
	return &Client{
		Auth:          NewAuthService(api),
		Sessions:      &SessionsService{api: api},
		Athletes:      &AthletesService{api: api},
		Drills:        &DrillsService{api: api},
		PracticePlans: &PracticePlansService{api: api},
		Evaluations:   &EvaluationsService{api: api},
		Messages:      &MessagesService{api: api},
		Notifications: &NotificationsService{api: api},
		Teams:         &TeamsService{api: api},
		Rosters:       &RostersService{api: api},
		GamePlans:     &GamePlansService{api: api},
		Dashboard:     &DashboardService{api: api},
		Reports:       &ReportsService{api: api},
		Finance:       &FinanceService{api: api},
		HR:            &HRService{api: api},
		Health:        &HealthService{api: api},
		Video:         &VideoService{api: api},
		Shop:          &ShopService{api: api},
		Admin:         &AdminService{api: api},
	}
}
