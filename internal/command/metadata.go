package command

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ParamInfo describes one placeholder, as reported by the generator.
// All fields are best-effort; a placeholder with no metadata is still
// prompted for using its bare name.
type ParamInfo struct {
	// Description explains what the parameter is. May be empty.
	Description string
	// Examples lists valid example values. May be empty.
	Examples []string
	// Required reports whether the parameter must be supplied.
	// Defaults to true when the generator omits it.
	Required bool
	// Default is the suggested default value, empty if none.
	Default string
}

// Describer is the slice of the command generator needed for metadata
// resolution.
type Describer interface {
	DescribeParameters(ctx context.Context, command string) (string, error)
}

// ResolveMetadata asks the generator to describe the bracket placeholders in
// a command. It returns a mapping keyed by placeholder name, covering only
// names present in placeholders; names the generator does not describe are
// simply absent.
//
// The call is skipped entirely when placeholders is empty. Failures are
// never fatal: a generator error or an unparseable response yields an empty
// map alongside a non-nil error the caller should report as a warning and
// otherwise ignore.
func ResolveMetadata(ctx context.Context, gen Describer, command string, placeholders []string) (map[string]ParamInfo, error) {
	meta := make(map[string]ParamInfo)
	if len(placeholders) == 0 {
		return meta, nil
	}

	response, err := gen.DescribeParameters(ctx, command)
	if err != nil {
		return meta, fmt.Errorf("describing parameters: %w", err)
	}

	block, ok := ExtractJSONBlock(response)
	if !ok {
		return meta, fmt.Errorf("no parameter info found in response")
	}
	parsed, err := parseParamInfo(block)
	if err != nil {
		return meta, fmt.Errorf("could not parse parameter info: %w", err)
	}

	for _, name := range placeholders {
		if info, ok := parsed[name]; ok {
			meta[name] = info
		}
	}
	return meta, nil
}

// ExtractJSONBlock locates the JSON payload in a model response. It tries a
// ```json fence first, then any ``` fence, then falls back to the trimmed
// response body. A fence without a closing delimiter yields everything after
// the opening fence. The second return value reports whether any non-empty
// candidate block was found.
func ExtractJSONBlock(response string) (string, bool) {
	if _, after, found := strings.Cut(response, "```json"); found {
		block, _, _ := strings.Cut(after, "```")
		block = strings.TrimSpace(block)
		return block, block != ""
	}
	if _, after, found := strings.Cut(response, "```"); found {
		block, _, _ := strings.Cut(after, "```")
		block = strings.TrimSpace(block)
		return block, block != ""
	}
	body := strings.TrimSpace(response)
	return body, body != ""
}

// rawParamInfo tolerates the loose shapes generators produce: null defaults,
// missing required flags, non-string example values.
type rawParamInfo struct {
	Description string        `json:"description"`
	Examples    []interface{} `json:"examples"`
	Required    *bool         `json:"required"`
	Default     interface{}   `json:"default"`
}

// parseParamInfo decodes the JSON block into per-placeholder metadata,
// returning an explicit error on structural failure instead of a partial
// result.
func parseParamInfo(block string) (map[string]ParamInfo, error) {
	var raw map[string]rawParamInfo
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return nil, err
	}

	parsed := make(map[string]ParamInfo, len(raw))
	for name, r := range raw {
		info := ParamInfo{
			Description: r.Description,
			Required:    true,
		}
		if r.Required != nil {
			info.Required = *r.Required
		}
		if r.Default != nil {
			info.Default = fmt.Sprint(r.Default)
		}
		for _, ex := range r.Examples {
			if ex != nil {
				info.Examples = append(info.Examples, fmt.Sprint(ex))
			}
		}
		parsed[name] = info
	}
	return parsed, nil
}
