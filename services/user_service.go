// services/user_service.go - User resource business logic
package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"octofit/apperr"
	"octofit/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserInput struct {
	Name         string              `json:"name" validate:"required,max=200"`
	Email        string              `json:"email" validate:"required,email"`
	Password     string              `json:"password" validate:"required"`
	Avatar       string              `json:"avatar" validate:"omitempty,url"`
	FitnessLevel models.FitnessLevel `json:"fitness_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

type UpdateUserInput struct {
	Name         *string              `json:"name" validate:"omitempty,max=200"`
	Email        *string              `json:"email" validate:"omitempty,email"`
	Password     *string              `json:"password"`
	Avatar       *string              `json:"avatar" validate:"omitempty,url"`
	FitnessLevel *models.FitnessLevel `json:"fitness_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// CreateUser registers a user, storing only the bcrypt hash of the password.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Store(err)
	}

	level := input.FitnessLevel
	if level == "" {
		level = models.FitnessBeginner
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Avatar:       input.Avatar,
		FitnessLevel: level,
		CreatedAt:    time.Now().UTC(),
	}

	// The unique index arbitrates duplicates, so a concurrent insert of the
	// same email still surfaces as a conflict rather than a store fault.
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("user with this email already exists")
		}
		return nil, apperr.Store(err)
	}
	return user, nil
}

func (s *UserService) GetUser(id string) (*models.User, error) {
	if err := checkID(id, "user"); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, lookupErr(err, "user")
	}
	return &user, nil
}

func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	if err := requireParam(email, "email"); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, lookupErr(err, "user")
	}
	return &user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return users, nil
}

// ListUsersByFitnessLevel returns users at exactly the given level, in
// store-native order.
func (s *UserService) ListUsersByFitnessLevel(level string) ([]models.User, error) {
	if err := requireParam(level, "level"); err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.db.Where("fitness_level = ?", level).Find(&users).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return users, nil
}

func (s *UserService) UpdateUser(id string, input UpdateUserInput) (*models.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		updates["email"] = *input.Email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Store(err)
		}
		updates["password_hash"] = string(hash)
	}
	if input.Avatar != nil {
		updates["avatar"] = *input.Avatar
	}
	if input.FitnessLevel != nil {
		updates["fitness_level"] = *input.FitnessLevel
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperr.Conflict("user with this email already exists")
			}
			return nil, apperr.Store(err)
		}
	}
	return user, nil
}

func (s *UserService) DeleteUser(id string) error {
	if err := checkID(id, "user"); err != nil {
		return err
	}

	res := s.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

// VerifyPassword reports whether candidate matches the user's stored hash.
func (s *UserService) VerifyPassword(user *models.User, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)) == nil
}
