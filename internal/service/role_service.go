package service

import (
	"context"
	"errors"

	"carrental/internal/models"
	"carrental/internal/repository"
)

type RoleService struct {
	roles RoleStore
}

func NewRoleService(roles RoleStore) *RoleService {
	return &RoleService{roles: roles}
}

func roleTaken(name string) error {
	return conflict("Role with name %s already exists", name)
}

func (s *RoleService) Create(ctx context.Context, name string) (models.Role, error) {
	if err := s.ensureFree(ctx, name, 0); err != nil {
		return models.Role{}, err
	}
	role, err := s.roles.Create(ctx, name)
	if err != nil {
		return models.Role{}, translate(err, "Role", nil, roleTaken(name).Error())
	}
	return role, nil
}

func (s *RoleService) Get(ctx context.Context, id int64) (models.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	return role, translate(err, "Role", id, "")
}

func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	return s.roles.List(ctx)
}

func (s *RoleService) Update(ctx context.Context, id int64, name string) (models.Role, error) {
	if _, err := s.roles.GetByID(ctx, id); err != nil {
		return models.Role{}, translate(err, "Role", id, "")
	}
	if err := s.ensureFree(ctx, name, id); err != nil {
		return models.Role{}, err
	}
	role, err := s.roles.Update(ctx, models.Role{ID: id, Name: name})
	return role, translate(err, "Role", id, roleTaken(name).Error())
}

func (s *RoleService) Delete(ctx context.Context, id int64) error {
	return translate(s.roles.Delete(ctx, id), "Role", id, "")
}

func (s *RoleService) ensureFree(ctx context.Context, name string, id int64) error {
	existing, err := s.roles.GetByName(ctx, name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != id:
		return roleTaken(name)
	}
	return nil
}
