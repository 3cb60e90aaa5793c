// services/team_service.go - Team resource and membership business logic
package services

import (
	"time"

	"gorm.io/gorm"

	"octofit/apperr"
	"octofit/models"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

type CreateTeamInput struct {
	Name        string            `json:"name" validate:"required,max=200"`
	Description string            `json:"description"`
	Captain     models.UserRef    `json:"captain" validate:"required"`
	Members     models.MemberList `json:"members"`
}

type UpdateTeamInput struct {
	Name        *string            `json:"name" validate:"omitempty,max=200"`
	Description *string            `json:"description"`
	Captain     *models.UserRef    `json:"captain"`
	Members     *models.MemberList `json:"members"`
}

func (s *TeamService) CreateTeam(input CreateTeamInput) (*models.Team, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Members.HasDuplicates() {
		return nil, apperr.Validation("members must not contain duplicates")
	}

	members := input.Members
	if members == nil {
		members = models.MemberList{}
	}

	team := &models.Team{
		Name:        input.Name,
		Description: input.Description,
		Captain:     input.Captain,
		Members:     members,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.db.Create(team).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return team, nil
}

func (s *TeamService) GetTeam(id string) (*models.Team, error) {
	if err := checkID(id, "team"); err != nil {
		return nil, err
	}

	var team models.Team
	if err := s.db.First(&team, "id = ?", id).Error; err != nil {
		return nil, lookupErr(err, "team")
	}
	return &team, nil
}

func (s *TeamService) ListTeams() ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Find(&teams).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return teams, nil
}

func (s *TeamService) UpdateTeam(id string, input UpdateTeamInput) (*models.Team, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Members != nil && input.Members.HasDuplicates() {
		return nil, apperr.Validation("members must not contain duplicates")
	}

	team, err := s.GetTeam(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Captain != nil {
		updates["captain"] = *input.Captain
	}
	if input.Members != nil {
		team.Members = *input.Members
		// Select+Updates runs the members field through its json serializer;
		// a single-column Update would pass the slice through raw.
		if err := s.db.Model(team).Select("members").Updates(team).Error; err != nil {
			return nil, apperr.Store(err)
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(team).Updates(updates).Error; err != nil {
			return nil, apperr.Store(err)
		}
	}
	return team, nil
}

func (s *TeamService) DeleteTeam(id string) error {
	if err := checkID(id, "team"); err != nil {
		return err
	}

	res := s.db.Delete(&models.Team{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("team not found")
	}
	return nil
}

// AddMember appends a member name to the team roster. Concurrent mutations of
// the same team are a read-modify-write without compare-and-swap, matching the
// store's single-document atomicity model.
func (s *TeamService) AddMember(teamID string, member models.UserRef) (*models.Team, error) {
	if err := requireParam(string(member), "member_name"); err != nil {
		return nil, err
	}

	team, err := s.GetTeam(teamID)
	if err != nil {
		return nil, err
	}

	if team.Members.Contains(member) {
		return nil, apperr.Conflict("member already exists in team")
	}

	team.Members = append(team.Members, member)
	if err := s.db.Model(team).Select("members").Updates(team).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return team, nil
}

// RemoveMember deletes a member name from the team roster.
func (s *TeamService) RemoveMember(teamID string, member models.UserRef) (*models.Team, error) {
	if err := requireParam(string(member), "member_name"); err != nil {
		return nil, err
	}

	team, err := s.GetTeam(teamID)
	if err != nil {
		return nil, err
	}

	if !team.Members.Contains(member) {
		return nil, apperr.NotFound("member not found in team")
	}

	team.Members = team.Members.Without(member)
	if err := s.db.Model(team).Select("members").Updates(team).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return team, nil
}
