package service

import (
	"context"
	"iter"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RegistrationServiceInterface defines the interface for the registration workflow
type RegistrationServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error)
}

// ApprovalServiceInterface defines the interface for the approval workflow and pending list
type ApprovalServiceInterface interface {
	Approve(ctx context.Context, userID uint, approverID string) (*UserResponse, error)
	ListPending(ctx context.Context, companyID string) iter.Seq2[UserResponse, error]
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}

// ApprovalPolicy decides whether approverID may approve the user with userID.
// A nil error allows the approval.
type ApprovalPolicy interface {
	Authorize(ctx context.Context, approverID string, userID uint) error
}
