package feed

import (
	"encoding/json"
	"fmt"
)

// MetadataEnvelope is the typed view over a source's opaque metadata JSON.
// A small closed set of known optional fields is pulled out; everything else
// is preserved in Extra so no producer data is lost. The envelope is
// validated at the ingestion boundary, never duck-typed through ranking.
type MetadataEnvelope struct {
	// ExternalID is the source's own identifier for the submission
	// (e.g. a Hacker News item id).
	ExternalID string `json:"external_id,omitempty"`

	// CommentsURL points at the source's discussion page for the article.
	CommentsURL string `json:"comments_url,omitempty"`

	// Tags are source-assigned topic labels.
	Tags []string `json:"tags,omitempty"`

	// Extra holds any fields the envelope does not model.
	Extra map[string]any `json:"-"`
}

// envelopeKnownKeys are the keys lifted out of the raw metadata map.
var envelopeKnownKeys = map[string]bool{
	"external_id":  true,
	"comments_url": true,
	"tags":         true,
}

// ParseEnvelope validates and converts a raw metadata map into an envelope.
// Known fields must have their expected types; unknown fields land in Extra.
func ParseEnvelope(raw map[string]any) (MetadataEnvelope, error) {
	var env MetadataEnvelope
	if raw == nil {
		return env, nil
	}

	if v, ok := raw["external_id"]; ok {
		s, ok := v.(string)
		if !ok {
			return env, fmt.Errorf("metadata field external_id: expected string, got %T", v)
		}
		env.ExternalID = s
	}

	if v, ok := raw["comments_url"]; ok {
		s, ok := v.(string)
		if !ok {
			return env, fmt.Errorf("metadata field comments_url: expected string, got %T", v)
		}
		env.CommentsURL = s
	}

	if v, ok := raw["tags"]; ok {
		switch tags := v.(type) {
		case []string:
			env.Tags = tags
		case []any:
			for _, t := range tags {
				s, ok := t.(string)
				if !ok {
					return env, fmt.Errorf("metadata field tags: expected string element, got %T", t)
				}
				env.Tags = append(env.Tags, s)
			}
		default:
			return env, fmt.Errorf("metadata field tags: expected string list, got %T", v)
		}
	}

	for k, v := range raw {
		if envelopeKnownKeys[k] {
			continue
		}
		if env.Extra == nil {
			env.Extra = make(map[string]any)
		}
		env.Extra[k] = v
	}

	return env, nil
}

// AsMap flattens the envelope back into the raw map shape stored in the
// database. Round-trips through ParseEnvelope.
func (e MetadataEnvelope) AsMap() map[string]any {
	if e.ExternalID == "" && e.CommentsURL == "" && len(e.Tags) == 0 && len(e.Extra) == 0 {
		return nil
	}

	m := make(map[string]any, len(e.Extra)+3)
	for k, v := range e.Extra {
		m[k] = v
	}
	if e.ExternalID != "" {
		m["external_id"] = e.ExternalID
	}
	if e.CommentsURL != "" {
		m["comments_url"] = e.CommentsURL
	}
	if len(e.Tags) > 0 {
		m["tags"] = e.Tags
	}
	return m
}

// MarshalJSON serializes the envelope as the flattened raw map so clients
// see the source's original field names.
func (e MetadataEnvelope) MarshalJSON() ([]byte, error) {
	m := e.AsMap()
	if m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(m)
}
