package service

import (
	"context"
	"sync"

	"VideoSuite-server/models"
	"VideoSuite-server/store"
)

const (
	StateIdle  = "idle"
	StateBusy  = "busy"
	StateError = "error"
)

// App wraps every asynchronous intent with a uniform busy/error lifecycle.
// It is the only place that sequences "start request, mutate store on
// success, surface error on failure". Busy is advisory: overlapping intents
// are not serialized against each other and the store resolves them
// last-write-wins.
type App struct {
	mu        sync.RWMutex
	state     string
	lastError string

	store *store.Store
	gen   Generator
}

func NewApp(st *store.Store, gen Generator) *App {
	return &App{state: StateIdle, store: st, gen: gen}
}

// State reports the machine's current state and, when in error, the recorded
// message.
func (a *App) State() (state, lastError string) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state, a.lastError
}

func (a *App) Store() *store.Store {
	return a.store
}

// begin moves Idle|Error -> Busy. A new intent always clears a prior error;
// errors never block retries.
func (a *App) begin() {
	a.mu.Lock()
	a.state = StateBusy
	a.lastError = ""
	a.mu.Unlock()
}

func (a *App) finish(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err == nil {
		a.state = StateIdle
		return
	}
	a.state = StateError
	a.lastError = errorMessage(err)
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "operation failed"
}

func (a *App) CreateProject(name, description string) (*models.Project, error) {
	a.begin()
	p, err := a.store.CreateProject(name, description)
	a.finish(err)
	return p, err
}

func (a *App) LoadProject(id string) (*models.Project, error) {
	a.begin()
	p, err := a.store.OpenProject(id)
	a.finish(err)
	return p, err
}

func (a *App) UpdateProject(id string, upd store.ProjectUpdate) (*models.Project, error) {
	a.begin()
	p, err := a.store.UpdateProject(id, upd)
	a.finish(err)
	return p, err
}

func (a *App) ListProjects() []*models.Project {
	a.begin()
	out := a.store.ListProjects()
	a.finish(nil)
	return out
}

func (a *App) DeleteProject(id string) error {
	a.begin()
	err := a.store.DeleteProject(id)
	a.finish(err)
	return err
}

// GenerateStoryboard calls the generation strategy and appends every
// returned storyboard to the open project, preserving order. The slice also
// comes back to the caller for immediate use.
func (a *App) GenerateStoryboard(ctx context.Context, req StoryboardRequest) ([]models.Storyboard, error) {
	a.begin()
	storyboards, err := a.gen.GenerateStoryboards(ctx, req)
	if err != nil {
		a.finish(err)
		return nil, err
	}
	for _, sb := range storyboards {
		if err := a.store.AddStoryboard(sb); err != nil {
			a.finish(err)
			return nil, err
		}
	}
	a.finish(nil)
	return storyboards, nil
}

// GenerateVideo produces a clip for one beat and appends it to the open
// project.
func (a *App) GenerateVideo(ctx context.Context, req VideoRequest) (*models.VideoClip, error) {
	a.begin()
	clip, err := a.gen.GenerateClip(ctx, req)
	if err != nil {
		a.finish(err)
		return nil, err
	}
	if err := a.store.AddVideoClip(*clip); err != nil {
		a.finish(err)
		return nil, err
	}
	a.finish(nil)
	return clip, nil
}

func (a *App) RefinePrompt(ctx context.Context, text string) (string, error) {
	a.begin()
	refined, err := a.gen.RefinePrompt(ctx, text)
	a.finish(err)
	return refined, err
}

func (a *App) GenerateStill(ctx context.Context, cardID, prompt string) (string, error) {
	a.begin()
	uri, err := a.gen.GenerateStill(ctx, cardID, prompt)
	a.finish(err)
	return uri, err
}

// ExtendClip appends the continuation segments returned by the backend; the
// entry echoing the original clip id is not re-appended.
func (a *App) ExtendClip(ctx context.Context, clipID string, extraSeconds float64) ([]models.VideoClip, error) {
	a.begin()
	clips, err := a.gen.ExtendClip(ctx, clipID, extraSeconds)
	if err != nil {
		a.finish(err)
		return nil, err
	}
	for _, c := range clips {
		if c.ID == clipID {
			continue
		}
		if err := a.store.AddVideoClip(c); err != nil {
			a.finish(err)
			return nil, err
		}
	}
	a.finish(nil)
	return clips, nil
}

func (a *App) AssembleScene(ctx context.Context, sceneID string, timeline []models.TimelineItem, settings models.ExportSettings) (string, error) {
	a.begin()
	url, err := a.gen.AssembleScene(ctx, sceneID, timeline, settings)
	a.finish(err)
	return url, err
}
