/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package contact

import (
	"context"
	"errors"

	"github.com/tomoncle/contact/domain"
	"github.com/tomoncle/contact/types"
	"github.com/uptrace/bun"
)

var (
	// ErrIDExists rejects a create whose body carries an id.
	ErrIDExists = errors.New("a new contact cannot already have an id")
	// ErrIDNull rejects an update whose body has no id.
	ErrIDNull = errors.New("invalid id")
	// ErrIDInvalid rejects an update whose body id differs from the target id.
	ErrIDInvalid = errors.New("body id does not match the target id")
)

// ContactService applies the write rules of contacts and runs criteria
// searches over them.
type ContactService struct {
	svc Service[domain.Contact]
}

// NewContactService returns a ContactService on db, or on the global
// connection when db is nil.
func NewContactService(db *bun.DB) *ContactService {
	if db == nil {
		return &ContactService{svc: NewService[domain.Contact]()}
	}
	return &ContactService{svc: NewServiceWithDB[domain.Contact](db)}
}

// Create stores a new contact. The store assigns its id.
func (s *ContactService) Create(ctx context.Context, dto *domain.ContactDTO) (*domain.ContactDTO, error) {
	if dto.ID != nil {
		return nil, ErrIDExists
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	entity := domain.ToEntity(dto)
	if err := s.svc.Save(ctx, entity); err != nil {
		return nil, err
	}
	return domain.ToDTO(entity), nil
}

// Update replaces every attribute of contact id. Absent attributes are cleared.
func (s *ContactService) Update(ctx context.Context, id int64, dto *domain.ContactDTO) (*domain.ContactDTO, error) {
	if err := checkID(id, dto); err != nil {
		return nil, err
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	entity := domain.ToEntity(dto)
	if err := s.svc.Update(ctx, entity); err != nil {
		return nil, err
	}
	return domain.ToDTO(entity), nil
}

// PartialUpdate copies the present attributes of dto onto contact id.
func (s *ContactService) PartialUpdate(ctx context.Context, id int64, dto *domain.ContactDTO) (*domain.ContactDTO, error) {
	if err := checkID(id, dto); err != nil {
		return nil, err
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	var entity *domain.Contact
	err := s.svc.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		var err error
		if entity, err = s.svc.GetWithTx(ctx, &tx, id); err != nil {
			return err
		}
		domain.Merge(entity, dto)
		return s.svc.UpdateWithTx(ctx, &tx, entity)
	})
	if err != nil {
		return nil, err
	}
	return domain.ToDTO(entity), nil
}

// FindOne returns contact id or database.ErrNotFound.
func (s *ContactService) FindOne(ctx context.Context, id int64) (*domain.ContactDTO, error) {
	entity, err := s.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.ToDTO(entity), nil
}

// Delete removes contact id or reports database.ErrNotFound.
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.svc.Delete(ctx, id)
}

// FindByCriteria returns one page of the contacts matching c.
func (s *ContactService) FindByCriteria(ctx context.Context, c *domain.ContactCriteria, page *types.PageRequest) (*types.Pagination[domain.ContactDTO], error) {
	result, err := s.svc.Search(ctx, c, page)
	if err != nil {
		return nil, err
	}
	return &types.Pagination[domain.ContactDTO]{
		Page:     result.Page,
		PageSize: result.PageSize,
		Total:    result.Total,
		Items:    domain.ToDTOs(result.Items),
	}, nil
}

// CountByCriteria returns the number of contacts matching c.
func (s *ContactService) CountByCriteria(ctx context.Context, c *domain.ContactCriteria) (int, error) {
	return s.svc.Count(ctx, c)
}

func checkID(id int64, dto *domain.ContactDTO) error {
	if dto.ID == nil {
		return ErrIDNull
	}
	if *dto.ID != id {
		return ErrIDInvalid
	}
	return nil
}
