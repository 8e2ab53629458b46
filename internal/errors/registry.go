package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render protocol (E001-E009)
	// ============================================

	"E001": {
		Category: CategoryRender,
		Message:  "Render function missing",
		Detail:   "An instance cannot mount without a render function. Set Options.Render.",
	},
	"E002": {
		Category: CategoryRender,
		Message:  "Instance already mounted",
		Detail:   "Mount may only be called once per instance. Create a new instance to render a second tree.",
	},
	"E003": {
		Category: CategoryRender,
		Message:  "Instance not mounted",
		Detail:   "Update needs a live output element to replace. Call Mount first.",
	},
	"E004": {
		Category: CategoryRender,
		Message:  "Nil descriptor node",
		Detail:   "The render function returned nil or a children sequence produced an element from a nil node.",
	},
	"E005": {
		Category: CategoryRender,
		Message:  "Unknown method",
		Detail:   "The store has no method with this name. Declare it in Options.Methods.",
	},

	// ============================================
	// Rendering surface (E010-E019)
	// ============================================

	"E010": {
		Category: CategorySurface,
		Message:  "Invalid tag name",
		Detail:   "Tag names must start with a letter and contain only letters, digits and hyphens.",
	},
	"E011": {
		Category: CategorySurface,
		Message:  "Foreign element",
		Detail:   "The element was not created by this rendering surface.",
	},
	"E012": {
		Category: CategorySurface,
		Message:  "Element is not a child",
		Detail:   "RemoveChild was called with an element that is not attached to this parent.",
	},
	"E013": {
		Category: CategorySurface,
		Message:  "Unsupported event handler",
		Detail:   "Handlers must be func(), func() error, func(*dom.Event), func(*dom.Event) error, func(string) or func(string) error.",
	},
	"E014": {
		Category: CategorySurface,
		Message:  "Element not found",
		Detail:   "No element in the live tree carries the requested id attribute.",
	},
	"E015": {
		Category: CategorySurface,
		Message:  "Hierarchy violation",
		Detail:   "An element cannot be appended to itself or to one of its descendants.",
	},

	// ============================================
	// Data files (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryData,
		Message:  "Data file unreadable",
	},
	"E021": {
		Category: CategoryData,
		Message:  "Data file invalid",
		Detail:   "Data files must be a YAML or JSON mapping of string keys to values.",
	},
	"E022": {
		Category: CategoryData,
		Message:  "Request value invalid",
		Detail:   "POST bodies must hold a single JSON value.",
	},

	// ============================================
	// Snapshot publishing (E030-E039)
	// ============================================

	"E030": {
		Category: CategoryPublish,
		Message:  "Snapshot publish failed",
	},
	"E031": {
		Category: CategoryPublish,
		Message:  "Invalid snapshot target",
		Detail:   "Targets are either a directory path or s3://bucket[/prefix].",
	},

	// ============================================
	// Configuration (E040-E049)
	// ============================================

	"E040": {
		Category: CategoryConfig,
		Message:  "Config file unreadable",
	},
	"E041": {
		Category: CategoryConfig,
		Message:  "Config file invalid",
	},
	"E042": {
		Category: CategoryConfig,
		Message:  "Config value invalid",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
