package models

import "time"

type Project struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Description         string               `json:"description"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
	Manifesto           *Manifesto           `json:"manifesto,omitempty"`
	ReferenceMedia      []ReferenceMedia     `json:"referenceMedia"`
	FinalAssets         []FinalAsset         `json:"finalAssets"`
	KeyFrameStrips      []KeyFrameStrip      `json:"keyFrameStrips"`
	Storyboards         []Storyboard         `json:"storyboards"`
	ApprovedStoryboards []ApprovedStoryboard `json:"approvedStoryboards"`
	VideoClips          []VideoClip          `json:"videoClips"`
	Timeline            []TimelineItem       `json:"timeline"`
}

// Manifesto bundles the style directives applied to generation prompts.
type Manifesto struct {
	Tone     string   `json:"tone"`
	Lighting string   `json:"lighting"`
	Color    string   `json:"color"`
	Motion   string   `json:"motion"`
	DoNots   []string `json:"doNots"`
	Enabled  bool     `json:"enabled"`
}

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type ReferenceMedia struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Clone returns a deep copy so callers can never mutate stored state.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Manifesto != nil {
		m := *p.Manifesto
		m.DoNots = append([]string(nil), p.Manifesto.DoNots...)
		cp.Manifesto = &m
	}
	cp.ReferenceMedia = append([]ReferenceMedia(nil), p.ReferenceMedia...)
	cp.FinalAssets = append([]FinalAsset(nil), p.FinalAssets...)
	cp.KeyFrameStrips = make([]KeyFrameStrip, len(p.KeyFrameStrips))
	for i, s := range p.KeyFrameStrips {
		s.Frames = append([]KeyFrame(nil), s.Frames...)
		cp.KeyFrameStrips[i] = s
	}
	cp.Storyboards = make([]Storyboard, len(p.Storyboards))
	for i, sb := range p.Storyboards {
		sb.Beats = append([]StoryboardBeat(nil), sb.Beats...)
		cp.Storyboards[i] = sb
	}
	cp.ApprovedStoryboards = make([]ApprovedStoryboard, len(p.ApprovedStoryboards))
	for i, a := range p.ApprovedStoryboards {
		a.Beats = append([]StoryboardBeat(nil), a.Beats...)
		cp.ApprovedStoryboards[i] = a
	}
	cp.VideoClips = append([]VideoClip(nil), p.VideoClips...)
	cp.Timeline = make([]TimelineItem, len(p.Timeline))
	for i, item := range p.Timeline {
		if item.Transitions != nil {
			tr := *item.Transitions
			item.Transitions = &tr
		}
		cp.Timeline[i] = item
	}
	return &cp
}
