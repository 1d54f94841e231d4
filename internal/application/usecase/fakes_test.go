package usecase_test

import (
	"sort"
	"strings"

	"github.com/contratafacil/contratafacil-api/internal/domain"
	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
	"github.com/contratafacil/contratafacil-api/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests del paquete.

type fakeBusinessRepo struct {
	byID map[string]*entity.Business
}

func newFakeBusinessRepo(businesses ...*entity.Business) *fakeBusinessRepo {
	r := &fakeBusinessRepo{byID: map[string]*entity.Business{}}
	for _, b := range businesses {
		r.byID[b.ID] = b
	}
	return r
}

func (r *fakeBusinessRepo) Create(b *entity.Business) error {
	r.byID[b.ID] = b
	return nil
}

func (r *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) {
	return r.byID[id], nil
}

func (r *fakeBusinessRepo) GetByEmail(email string) (*entity.Business, error) {
	for _, b := range r.byID {
		if b.Email == email {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBusinessRepo) GetBySlug(slug string) (*entity.Business, error) {
	for _, b := range r.byID {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBusinessRepo) UpdateProfile(b *entity.Business) error {
	if _, ok := r.byID[b.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[b.ID] = b
	return nil
}

type fakeCandidateRepo struct {
	byID map[string]*entity.Candidate
}

func newFakeCandidateRepo(candidates ...*entity.Candidate) *fakeCandidateRepo {
	r := &fakeCandidateRepo{byID: map[string]*entity.Candidate{}}
	for _, c := range candidates {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCandidateRepo) Create(c *entity.Candidate) error {
	for _, existing := range r.byID {
		if existing.BusinessID == c.BusinessID && strings.EqualFold(existing.Email, c.Email) {
			return domain.ErrDuplicateSubmission
		}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCandidateRepo) GetByBusinessAndID(businessID, id string) (*entity.Candidate, error) {
	c, ok := r.byID[id]
	if !ok || c.BusinessID != businessID {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCandidateRepo) GetByBusinessAndEmail(businessID, email string) (*entity.Candidate, error) {
	for _, c := range r.byID {
		if c.BusinessID == businessID && strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCandidateRepo) matches(c *entity.Candidate, businessID string, f repository.CandidateFilter) bool {
	if c.BusinessID != businessID {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), s) && !strings.Contains(strings.ToLower(c.Email), s) {
			return false
		}
	}
	return true
}

func (r *fakeCandidateRepo) ListByBusiness(businessID string, f repository.CandidateFilter) ([]*entity.Candidate, error) {
	var out []*entity.Candidate
	for _, c := range r.byID {
		if r.matches(c, businessID, f) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *fakeCandidateRepo) CountByBusiness(businessID string, f repository.CandidateFilter) (int, error) {
	n := 0
	for _, c := range r.byID {
		if r.matches(c, businessID, f) {
			n++
		}
	}
	return n, nil
}

func (r *fakeCandidateRepo) UpdateStatusNotes(businessID, id, status, notes string) error {
	c, ok := r.byID[id]
	if !ok || c.BusinessID != businessID {
		return domain.ErrNotFound
	}
	c.Status = status
	c.Notes = notes
	return nil
}

func (r *fakeCandidateRepo) Delete(businessID, id string) error {
	c, ok := r.byID[id]
	if !ok || c.BusinessID != businessID {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeCandidateRepo) DeleteAllByBusiness(businessID string) (int64, error) {
	var n int64
	for id, c := range r.byID {
		if c.BusinessID == businessID {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

type fakePDFGenerator struct{}

func (fakePDFGenerator) GenerateRosterPDF(_ *entity.Business, _ []*entity.Candidate) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}
