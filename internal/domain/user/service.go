package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const DefaultPIN = "1111"

type Service struct {
	repo       Repository
	defaultPIN string
}

func NewService(repo Repository, defaultPIN string) *Service {
	if defaultPIN == "" {
		defaultPIN = DefaultPIN
	}
	return &Service{repo: repo, defaultPIN: defaultPIN}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.Get(ctx, id)
}

// Create registers a new user with the default PIN. Creating an owner
// requires the actor to be an owner; everything else needs admin rights.
func (s *Service) Create(ctx context.Context, actor *User, id, name, role string) (*User, error) {
	if actor == nil || !CanManageUsers(actor.Role) {
		return nil, ErrNotAllowed
	}
	if role == RoleOwner && !CanChangeRoles(actor.Role) {
		return nil, ErrNotAllowed
	}

	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return nil, ErrInvalidCredentials
	}
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}

	if existing, err := s.repo.Get(ctx, id); err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, ErrDuplicateID
	}

	hash, err := hashPIN(s.defaultPIN)
	if err != nil {
		return nil, err
	}

	created := User{ID: id, Name: name, Role: role, PINHash: hash}
	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a user. Only owners may delete, and never themselves.
func (s *Service) Delete(ctx context.Context, actor *User, id string) error {
	if actor == nil || !CanChangeRoles(actor.Role) {
		return ErrNotAllowed
	}
	if actor.ID == id {
		return ErrSelfDelete
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ChangeRole(ctx context.Context, actor *User, id, role string) (*User, error) {
	if actor == nil || !CanChangeRoles(actor.Role) {
		return nil, ErrNotAllowed
	}
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}

	target, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	target.Role = role
	if err := s.repo.Update(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

// ResetPIN restores the default PIN for a user, for when someone forgets theirs.
func (s *Service) ResetPIN(ctx context.Context, actor *User, id string) error {
	if actor == nil || !CanManageUsers(actor.Role) {
		return ErrNotAllowed
	}

	target, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	hash, err := hashPIN(s.defaultPIN)
	if err != nil {
		return err
	}
	target.PINHash = hash
	return s.repo.Update(ctx, target)
}

// ChangePIN lets a user replace their own PIN.
func (s *Service) ChangePIN(ctx context.Context, userID, newPIN string) error {
	if !validPIN(newPIN) {
		return ErrInvalidPIN
	}

	target, err := s.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	hash, err := hashPIN(newPIN)
	if err != nil {
		return err
	}
	target.PINHash = hash
	return s.repo.Update(ctx, target)
}

func (s *Service) Authenticate(ctx context.Context, id, pin string) (*User, error) {
	found, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.PINHash), []byte(pin)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return found, nil
}

// Seed creates the initial accounts on an empty user table.
func (s *Service) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := hashPIN(s.defaultPIN)
	if err != nil {
		return err
	}

	initial := []User{
		{ID: "u00", Name: "Fortuna", Role: RoleOwner},
		{ID: "u01", Name: "Admin User", Role: RoleAdmin},
		{ID: "u02", Name: "Performer A", Role: RoleMember},
	}
	for i := range initial {
		initial[i].PINHash = hash
		if err := s.repo.Create(ctx, &initial[i]); err != nil {
			return err
		}
	}
	return nil
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func hashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
