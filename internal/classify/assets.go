package classify

import "github.com/lawai/consult-backend/internal/entity"

// ScenarioTemplate is a local follow-up template: three questions with three
// options each, usable without an AI round-trip.
type ScenarioTemplate struct {
	Base     []entity.FollowupItem
	Subtypes []*SubtypeRule
}

// scenarioAssets holds per-case-type local templates. Follow-up generation
// moved fully to the AI backend, so the map is currently empty; the lookup
// machinery stays wired so a static template source can be re-introduced
// without touching the state machine.
var scenarioAssets = map[string]*ScenarioTemplate{}

// TemplateSource resolves a local follow-up template for a case-type key and
// input text, or returns nil to defer to AI generation.
type TemplateSource interface {
	Lookup(caseTypeKey, text string) (name string, items []entity.FollowupItem)
}

// AssetTemplateSource serves templates from scenarioAssets, using the subtype
// scorer to resolve multi-hit conflicts inside one case type.
type AssetTemplateSource struct{}

func NewAssetTemplateSource() *AssetTemplateSource {
	return &AssetTemplateSource{}
}

func (a *AssetTemplateSource) Lookup(caseTypeKey, text string) (string, []entity.FollowupItem) {
	asset, ok := scenarioAssets[caseTypeKey]
	if !ok || asset == nil {
		return "", nil
	}
	if best := PickBestSubtype(asset.Subtypes, text); best != nil {
		return best.Name, asset.Base
	}
	if len(asset.Base) == entity.FollowupCount {
		return caseTypeKey, asset.Base
	}
	return "", nil
}
