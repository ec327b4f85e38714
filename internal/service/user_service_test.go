package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"reservabar/internal/auth"
	apperrors "reservabar/internal/errors"
	"reservabar/internal/model"
)

func TestUserService_GetUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	user, err := svc.GetUser(context.Background(), 99)

	assert.Equal(t, apperrors.ErrUserNotFound, err)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser(t *testing.T) {
	existing := &model.User{
		ID:           5,
		Email:        "a@x.com",
		PasswordHash: "old-hash",
		FirstName:    "Ana",
		Role:         model.RoleClient,
		IsActive:     true,
	}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	newFirst := "Anabel"
	newPassword := "brand-new-pass"
	badRole := model.Role("superuser")

	svc := NewUserService(mockRepo, nil)
	updated, err := svc.UpdateUser(context.Background(), 5, UserUpdate{
		FirstName: &newFirst,
		Password:  &newPassword,
		Role:      &badRole,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Anabel", updated.FirstName)
	// Password is rehashed, never stored verbatim.
	assert.NotEqual(t, "old-hash", updated.PasswordHash)
	assert.NotEqual(t, newPassword, updated.PasswordHash)
	assert.True(t, auth.CheckPassword(newPassword, updated.PasswordHash))
	// Unrecognized role is ignored.
	assert.Equal(t, model.RoleClient, updated.Role)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	_, err := svc.UpdateUser(context.Background(), 99, UserUpdate{})

	assert.Equal(t, apperrors.ErrUserNotFound, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		deleted       bool
		expectedError error
	}{
		{name: "deletes existing user", id: 5, deleted: true},
		{name: "missing user yields not found", id: 99, deleted: false, expectedError: apperrors.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("Delete", mock.Anything, tt.id).Return(tt.deleted, nil)

			svc := NewUserService(mockRepo, nil)
			err := svc.DeleteUser(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
