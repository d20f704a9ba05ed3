package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"VideoSuite-server/models"

	"github.com/google/uuid"
)

// Store is the single writable source of truth for all projects known to
// this process and the currently open project. Every successful mutation is
// persisted before it returns, so the saved state never trails the in-memory
// state.
type Store struct {
	mu        sync.RWMutex
	projects  map[string]*models.Project
	current   string
	persister Persister

	clock func() time.Time
	idGen func() string
}

func New(p Persister) (*Store, error) {
	projects, err := p.Load()
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = map[string]*models.Project{}
	}
	return &Store{
		projects:  projects,
		persister: p,
		clock:     time.Now,
		idGen:     uuid.NewString,
	}, nil
}

func (s *Store) persistLocked() error {
	return s.persister.Save(s.projects)
}

// CreateProject registers a fresh empty project and opens it.
func (s *Store) CreateProject(name, description string) (*models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, models.NewValidationError("name", "must not be blank")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	p := &models.Project{
		ID:                  s.idGen(),
		Name:                name,
		Description:         description,
		CreatedAt:           now,
		UpdatedAt:           now,
		ReferenceMedia:      []models.ReferenceMedia{},
		FinalAssets:         []models.FinalAsset{},
		KeyFrameStrips:      []models.KeyFrameStrip{},
		Storyboards:         []models.Storyboard{},
		ApprovedStoryboards: []models.ApprovedStoryboard{},
		VideoClips:          []models.VideoClip{},
		Timeline:            []models.TimelineItem{},
	}

	prevCurrent := s.current
	s.projects[p.ID] = p
	s.current = p.ID

	if err := s.persistLocked(); err != nil {
		delete(s.projects, p.ID)
		s.current = prevCurrent
		return nil, err
	}
	return p.Clone(), nil
}

func (s *Store) GetProject(id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, models.ErrProjectNotFound
	}
	return p.Clone(), nil
}

// ProjectUpdate carries the fields of a partial update; nil fields are left
// untouched.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Manifesto   *models.Manifesto
}

func (s *Store) UpdateProject(id string, upd ProjectUpdate) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, models.ErrProjectNotFound
	}

	prev := p.Clone()
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Manifesto != nil {
		m := *upd.Manifesto
		m.DoNots = append([]string(nil), upd.Manifesto.DoNots...)
		p.Manifesto = &m
	}
	p.UpdatedAt = s.clock()

	if err := s.persistLocked(); err != nil {
		s.projects[id] = prev
		return nil, err
	}
	return p.Clone(), nil
}

// ListProjects returns copies of all known projects, most recently updated
// first.
func (s *Store) ListProjects() []*models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// DeleteProject is idempotent; deleting an unknown id is a no-op.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil
	}

	prevCurrent := s.current
	delete(s.projects, id)
	if s.current == id {
		s.current = ""
	}

	if err := s.persistLocked(); err != nil {
		s.projects[id] = p
		s.current = prevCurrent
		return err
	}
	return nil
}

// OpenProject makes the project the current one. Opening does not mutate the
// project itself and is not persisted; the open pointer is session state.
func (s *Store) OpenProject(id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, models.ErrProjectNotFound
	}
	s.current = id
	return p.Clone(), nil
}

func (s *Store) CurrentProject() (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == "" {
		return nil, models.ErrNoActiveProject
	}
	return s.projects[s.current].Clone(), nil
}

// appendChild applies a collection append to the currently open project and
// persists the result. Fails with ErrNoActiveProject when nothing is open.
func (s *Store) appendChild(apply func(p *models.Project)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == "" {
		return models.ErrNoActiveProject
	}
	p := s.projects[s.current]
	prev := p.Clone()

	apply(p)
	p.UpdatedAt = s.clock()

	if err := s.persistLocked(); err != nil {
		s.projects[s.current] = prev
		return err
	}
	return nil
}

func (s *Store) AddReferenceMedia(m models.ReferenceMedia) error {
	return s.appendChild(func(p *models.Project) {
		p.ReferenceMedia = append(p.ReferenceMedia, m)
	})
}

func (s *Store) AddFinalAsset(a models.FinalAsset) error {
	return s.appendChild(func(p *models.Project) {
		p.FinalAssets = append(p.FinalAssets, a)
	})
}

func (s *Store) AddKeyFrameStrip(strip models.KeyFrameStrip) error {
	return s.appendChild(func(p *models.Project) {
		p.KeyFrameStrips = append(p.KeyFrameStrips, strip)
	})
}

func (s *Store) AddStoryboard(sb models.Storyboard) error {
	return s.appendChild(func(p *models.Project) {
		p.Storyboards = append(p.Storyboards, sb)
	})
}

// AddApprovedStoryboard appends the approval and, when it is active,
// deactivates every previously active approval so at most one drives
// production.
func (s *Store) AddApprovedStoryboard(a models.ApprovedStoryboard) error {
	return s.appendChild(func(p *models.Project) {
		if a.Active {
			for i := range p.ApprovedStoryboards {
				p.ApprovedStoryboards[i].Active = false
			}
		}
		p.ApprovedStoryboards = append(p.ApprovedStoryboards, a)
	})
}

func (s *Store) AddVideoClip(c models.VideoClip) error {
	return s.appendChild(func(p *models.Project) {
		p.VideoClips = append(p.VideoClips, c)
	})
}

func (s *Store) AddTimelineItem(item models.TimelineItem) error {
	return s.appendChild(func(p *models.Project) {
		p.Timeline = append(p.Timeline, item)
	})
}

func (s *Store) SetManifesto(m models.Manifesto) error {
	return s.appendChild(func(p *models.Project) {
		p.Manifesto = &m
	})
}

// UpdateVideoClip resolves a clip's generation lifecycle. It addresses the
// project by id rather than the open pointer because the background
// processor is not tied to the session's open project.
func (s *Store) UpdateVideoClip(projectID, clipID, status, videoURL string) (*models.VideoClip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[projectID]
	if !ok {
		return nil, models.ErrProjectNotFound
	}

	idx := -1
	for i := range p.VideoClips {
		if p.VideoClips[i].ID == clipID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, models.ErrClipNotFound
	}

	prev := p.Clone()
	p.VideoClips[idx].Status = status
	if videoURL != "" {
		p.VideoClips[idx].VideoURL = videoURL
	}
	p.UpdatedAt = s.clock()

	if err := s.persistLocked(); err != nil {
		s.projects[projectID] = prev
		return nil, err
	}
	clip := p.VideoClips[idx]
	return &clip, nil
}
