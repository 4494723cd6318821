package gym

import (
	"context"

	"gorm.io/gorm"

	"gymhub/internal/domain/limits"
	"gymhub/internal/pkg/apperr"
	"gymhub/internal/pkg/pagination"
)

// OwnerDirectory verifies destination owners on gym reassignment;
// implemented by the auth repository.
type OwnerDirectory interface {
	OwnerExists(ctx context.Context, id int64) (bool, error)
}

// Actor is the request-scoped caller identity passed into every
// operation; there is no global session state.
type Actor struct {
	UserID int64
	Admin  bool
}

// Service guards every create and move with the limit enforcer: the
// quota check runs before any write, and reassignments count the
// destination owner's usage excluding the row being moved.
type Service struct {
	db        *gorm.DB
	gyms      *GymRepository
	locations *LocationRepository
	equipment *EquipmentRepository
	members   *MemberRepository
	owners    OwnerDirectory
	enforcer  *limits.Enforcer
}

func NewService(
	db *gorm.DB,
	gyms *GymRepository,
	locations *LocationRepository,
	equipment *EquipmentRepository,
	members *MemberRepository,
	owners OwnerDirectory,
	enforcer *limits.Enforcer,
) *Service {
	return &Service{
		db:        db,
		gyms:      gyms,
		locations: locations,
		equipment: equipment,
		members:   members,
		owners:    owners,
		enforcer:  enforcer,
	}
}

// ---- Gyms ----

func (s *Service) CreateGym(ctx context.Context, ownerID int64, req *CreateGymRequest) (*Gym, error) {
	if err := s.enforcer.Ensure(ctx, ownerID, limits.ResourceGym, limits.CheckOptions{}); err != nil {
		return nil, err
	}

	g := &Gym{
		OwnerID: ownerID,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	}
	if err := s.gyms.Create(ctx, g); err != nil {
		return nil, apperr.Internal("failed to create gym", err)
	}
	return g, nil
}

func (s *Service) GetGym(ctx context.Context, actor Actor, id int64) (*Gym, error) {
	return s.ownedGym(ctx, actor, id)
}

func (s *Service) ListGyms(ctx context.Context, ownerID int64, params pagination.Params) ([]*Gym, pagination.Meta, error) {
	gyms, total, err := s.gyms.List(ctx, ownerID, params)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal("failed to list gyms", err)
	}
	return gyms, pagination.NewMeta(params, total), nil
}

// UpdateGym edits gym fields. A SUPER_ADMIN may set OwnerID to move the
// gym to another owner; the destination quota is checked excluding the
// gym's own row so the move succeeds whenever the new owner has
// capacity, regardless of the old owner being full.
func (s *Service) UpdateGym(ctx context.Context, actor Actor, id int64, req *UpdateGymRequest) (*Gym, error) {
	g, err := s.ownedGym(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.OwnerID != nil && *req.OwnerID != g.OwnerID {
		if !actor.Admin {
			return nil, ErrNotYourResource
		}
		exists, err := s.owners.OwnerExists(ctx, *req.OwnerID)
		if err != nil {
			return nil, apperr.Internal("failed to look up owner", err)
		}
		if !exists {
			return nil, ErrOwnerNotFound
		}
		if err := s.enforcer.Ensure(ctx, *req.OwnerID, limits.ResourceGym,
			limits.CheckOptions{ExcludingID: &id}); err != nil {
			return nil, err
		}
		g.OwnerID = *req.OwnerID
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Address != nil {
		g.Address = *req.Address
	}
	if req.City != nil {
		g.City = *req.City
	}

	if err := s.gyms.Update(ctx, g); err != nil {
		return nil, apperr.Internal("failed to update gym", err)
	}
	return g, nil
}

func (s *Service) DeleteGym(ctx context.Context, actor Actor, id int64) error {
	if _, err := s.ownedGym(ctx, actor, id); err != nil {
		return err
	}
	if err := s.gyms.SoftDelete(ctx, id); err != nil {
		return apperr.Internal("failed to delete gym", err)
	}
	return nil
}

// ---- Locations ----

func (s *Service) CreateLocation(ctx context.Context, actor Actor, req *CreateLocationRequest) (*Location, error) {
	g, err := s.ownedGym(ctx, actor, req.GymID)
	if err != nil {
		return nil, err
	}

	if err := s.enforcer.Ensure(ctx, g.OwnerID, limits.ResourceLocation, limits.CheckOptions{}); err != nil {
		return nil, err
	}

	l := &Location{
		GymID:   req.GymID,
		Name:    req.Name,
		Address: req.Address,
	}
	if err := s.locations.Create(ctx, l); err != nil {
		return nil, apperr.Internal("failed to create location", err)
	}
	return l, nil
}

func (s *Service) ListLocations(ctx context.Context, ownerID int64, params pagination.Params) ([]*Location, pagination.Meta, error) {
	locations, total, err := s.locations.ListByOwner(ctx, ownerID, params)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal("failed to list locations", err)
	}
	return locations, pagination.NewMeta(params, total), nil
}

// UpdateLocation edits fields and optionally moves the location to
// another gym, re-checking the destination owner's quota.
func (s *Service) UpdateLocation(ctx context.Context, actor Actor, id int64, req *UpdateLocationRequest) (*Location, error) {
	l, _, err := s.ownedLocation(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.GymID != nil && *req.GymID != l.GymID {
		dest, err := s.ownedGym(ctx, actor, *req.GymID)
		if err != nil {
			return nil, err
		}
		if err := s.enforcer.Ensure(ctx, dest.OwnerID, limits.ResourceLocation,
			limits.CheckOptions{ExcludingID: &id}); err != nil {
			return nil, err
		}
		l.GymID = *req.GymID
	}

	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Address != nil {
		l.Address = *req.Address
	}

	if err := s.locations.Update(ctx, l); err != nil {
		return nil, apperr.Internal("failed to update location", err)
	}
	return l, nil
}

func (s *Service) DeleteLocation(ctx context.Context, actor Actor, id int64) error {
	if _, _, err := s.ownedLocation(ctx, actor, id); err != nil {
		return err
	}
	if err := s.locations.SoftDelete(ctx, id); err != nil {
		return apperr.Internal("failed to delete location", err)
	}
	return nil
}

// ---- Equipment ----

func (s *Service) CreateEquipment(ctx context.Context, actor Actor, req *CreateEquipmentRequest) (*Equipment, error) {
	l, g, err := s.ownedLocation(ctx, actor, req.LocationID)
	if err != nil {
		return nil, err
	}

	if err := s.enforcer.Ensure(ctx, g.OwnerID, limits.ResourceEquipment,
		limits.CheckOptions{LocationID: &l.ID}); err != nil {
		return nil, err
	}

	e := &Equipment{
		LocationID: req.LocationID,
		Name:       req.Name,
		Category:   req.Category,
		Quantity:   req.Quantity,
	}
	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, apperr.Internal("failed to create equipment", err)
	}
	return e, nil
}

func (s *Service) ListEquipment(ctx context.Context, ownerID int64, locationID *int64, params pagination.Params) ([]*Equipment, pagination.Meta, error) {
	equipment, total, err := s.equipment.ListByOwner(ctx, ownerID, locationID, params)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal("failed to list equipment", err)
	}
	return equipment, pagination.NewMeta(params, total), nil
}

func (s *Service) UpdateEquipment(ctx context.Context, actor Actor, id int64, req *UpdateEquipmentRequest) (*Equipment, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load equipment", err)
	}
	if e == nil {
		return nil, ErrEquipmentNotFound
	}
	if _, _, err := s.ownedLocation(ctx, actor, e.LocationID); err != nil {
		return nil, err
	}

	if req.LocationID != nil && *req.LocationID != e.LocationID {
		dest, destGym, err := s.ownedLocation(ctx, actor, *req.LocationID)
		if err != nil {
			return nil, err
		}
		if err := s.enforcer.Ensure(ctx, destGym.OwnerID, limits.ResourceEquipment,
			limits.CheckOptions{LocationID: &dest.ID, ExcludingID: &id}); err != nil {
			return nil, err
		}
		e.LocationID = *req.LocationID
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Quantity != nil {
		e.Quantity = *req.Quantity
	}

	if err := s.equipment.Update(ctx, e); err != nil {
		return nil, apperr.Internal("failed to update equipment", err)
	}
	return e, nil
}

func (s *Service) DeleteEquipment(ctx context.Context, actor Actor, id int64) error {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to load equipment", err)
	}
	if e == nil {
		return ErrEquipmentNotFound
	}
	if _, _, err := s.ownedLocation(ctx, actor, e.LocationID); err != nil {
		return err
	}
	if err := s.equipment.SoftDelete(ctx, id); err != nil {
		return apperr.Internal("failed to delete equipment", err)
	}
	return nil
}

// ---- Members ----

func (s *Service) CreateMember(ctx context.Context, actor Actor, req *CreateMemberRequest) (*Member, error) {
	g, err := s.ownedGym(ctx, actor, req.GymID)
	if err != nil {
		return nil, err
	}

	if err := s.enforcer.Ensure(ctx, g.OwnerID, limits.ResourceMember, limits.CheckOptions{}); err != nil {
		return nil, err
	}

	m := &Member{
		GymID:  req.GymID,
		UserID: req.UserID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, apperr.Internal("failed to create member", err)
	}
	return m, nil
}

func (s *Service) ListMembers(ctx context.Context, ownerID int64, gymID *int64, params pagination.Params) ([]*Member, pagination.Meta, error) {
	members, total, err := s.members.ListByOwner(ctx, ownerID, gymID, params)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal("failed to list members", err)
	}
	return members, pagination.NewMeta(params, total), nil
}

func (s *Service) UpdateMember(ctx context.Context, actor Actor, id int64, req *UpdateMemberRequest) (*Member, error) {
	m, err := s.ownedMember(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.GymID != nil && *req.GymID != m.GymID {
		dest, err := s.ownedGym(ctx, actor, *req.GymID)
		if err != nil {
			return nil, err
		}
		if err := s.enforcer.Ensure(ctx, dest.OwnerID, limits.ResourceMember,
			limits.CheckOptions{ExcludingID: &id}); err != nil {
			return nil, err
		}
		m.GymID = *req.GymID
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}

	if err := s.members.Update(ctx, m); err != nil {
		return nil, apperr.Internal("failed to update member", err)
	}
	return m, nil
}

// DeleteMember soft-deletes the member and, when a login account is
// linked, its user row in one transaction.
func (s *Service) DeleteMember(ctx context.Context, actor Actor, id int64) error {
	m, err := s.ownedMember(ctx, actor, id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.members.SoftDeleteTx(tx, m)
	})
	if err != nil {
		return apperr.Internal("failed to delete member", err)
	}
	return nil
}

// ---- ownership checks ----

func (s *Service) ownedGym(ctx context.Context, actor Actor, id int64) (*Gym, error) {
	g, err := s.gyms.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load gym", err)
	}
	if g == nil {
		return nil, ErrGymNotFound
	}
	if !actor.Admin && g.OwnerID != actor.UserID {
		return nil, ErrNotYourResource
	}
	return g, nil
}

func (s *Service) ownedLocation(ctx context.Context, actor Actor, id int64) (*Location, *Gym, error) {
	l, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return nil, nil, apperr.Internal("failed to load location", err)
	}
	if l == nil {
		return nil, nil, ErrLocationNotFound
	}
	g, err := s.ownedGym(ctx, actor, l.GymID)
	if err != nil {
		return nil, nil, err
	}
	return l, g, nil
}

func (s *Service) ownedMember(ctx context.Context, actor Actor, id int64) (*Member, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load member", err)
	}
	if m == nil {
		return nil, ErrMemberNotFound
	}
	if _, err := s.ownedGym(ctx, actor, m.GymID); err != nil {
		return nil, err
	}
	return m, nil
}
