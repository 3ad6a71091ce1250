// Package roles resolves which application sections a user may access based
// on their role tags.
//
// The mapping mirrors the permission checks enforced by the Arctic Wolves
// backend: every role is enumerated independently in a static table, and
// access is resolved by set union across all roles a user carries. No role
// inherits from another; the admin role is spelled out in full rather than
// derived.
//
// # Usage
//
//	if roles.CanAccess(user.Roles, roles.SectionFinance) {
//		// show the finance section
//	}
//
//	sections := roles.AccessibleSections(user.Roles)
//
// The table is read-only and safe for concurrent use.
package roles
