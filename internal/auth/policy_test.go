package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reservabar/internal/model"
)

func TestAuthorize(t *testing.T) {
	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	client := &model.User{ID: 5, Role: model.RoleClient}
	impostor := &model.User{ID: 9, Role: model.Role("superuser")}

	tests := []struct {
		name     string
		actor    *model.User
		action   Action
		targetID uint
		allow    bool
		reason   string
	}{
		{name: "admin lists users", actor: admin, action: ActionListUsers, targetID: 0, allow: true, reason: ReasonAdmin},
		{name: "client cannot list users", actor: client, action: ActionListUsers, targetID: 0, allow: false, reason: ReasonAdminOnly},
		{name: "admin reads any user", actor: admin, action: ActionReadUser, targetID: 42, allow: true, reason: ReasonAdmin},
		{name: "client reads own record", actor: client, action: ActionReadUser, targetID: 5, allow: true, reason: ReasonOwner},
		{name: "client cannot read others", actor: client, action: ActionReadUser, targetID: 7, allow: false, reason: ReasonNotOwner},
		{name: "client updates own record", actor: client, action: ActionUpdateUser, targetID: 5, allow: true, reason: ReasonOwner},
		{name: "client cannot update others", actor: client, action: ActionUpdateUser, targetID: 7, allow: false, reason: ReasonNotOwner},
		{name: "client deletes own record", actor: client, action: ActionDeleteUser, targetID: 5, allow: true, reason: ReasonOwner},
		{name: "client cannot delete others", actor: client, action: ActionDeleteUser, targetID: 7, allow: false, reason: ReasonNotOwner},
		{name: "admin deletes any record", actor: admin, action: ActionDeleteUser, targetID: 5, allow: true, reason: ReasonAdmin},
		{name: "unknown role is denied", actor: impostor, action: ActionReadUser, targetID: 9, allow: false, reason: ReasonUnknownRole},
		{name: "nil actor is denied", actor: nil, action: ActionReadUser, targetID: 1, allow: false, reason: ReasonUnknownRole},
		{name: "unknown action is denied", actor: admin, action: Action("drop_tables"), targetID: 0, allow: false, reason: ReasonUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.actor, tt.action, tt.targetID)
			assert.Equal(t, tt.allow, d.Allow)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}
