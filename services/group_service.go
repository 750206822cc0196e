package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type GroupService struct {
	GroupRepo *repository.GroupRepository
	UserRepo  *repository.UserRepository
}

func NewGroupService(gr *repository.GroupRepository, ur *repository.UserRepository) *GroupService {
	return &GroupService{GroupRepo: gr, UserRepo: ur}
}

// URL segment -> group name. Only the two managed groups are reachable
// through the membership endpoints.
func resolveGroupName(segment string) (string, error) {
	switch segment {
	case "manager":
		return entity.GroupManager, nil
	case "delivery-crew":
		return entity.GroupDeliveryCrew, nil
	default:
		return "", ErrGroupNotFound
	}
}

func (s *GroupService) ListMembers(segment string) ([]entity.User, error) {
	group, err := s.findGroup(segment)
	if err != nil {
		return nil, err
	}
	return s.GroupRepo.ListMembers(group)
}

func (s *GroupService) AddMember(segment string, userID uint) (*entity.User, error) {
	group, err := s.findGroup(segment)
	if err != nil {
		return nil, err
	}
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.GroupRepo.AddMember(group, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *GroupService) RemoveMember(segment string, userID uint) error {
	group, err := s.findGroup(segment)
	if err != nil {
		return err
	}
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}
	member, err := s.GroupRepo.IsMember(group, user.ID)
	if err != nil {
		return err
	}
	if !member {
		return ErrNotAMember
	}
	return s.GroupRepo.RemoveMember(group, user)
}

func (s *GroupService) findGroup(segment string) (*entity.Group, error) {
	name, err := resolveGroupName(segment)
	if err != nil {
		return nil, err
	}
	group, err := s.GroupRepo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGroupNotFound
	}
	return group, err
}

func (s *GroupService) findUser(userID uint) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}
