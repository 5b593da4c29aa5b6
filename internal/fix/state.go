package fix

import "regexp"

// Filename-shape heuristics. These only look at the path, never the
// contents.
var (
	adminRe      = regexp.MustCompile(`(\b|_)admin(\b|_)`)
	commandsRe   = regexp.MustCompile(`(^|[\\/])management[\\/]commands[\\/]`)
	dunderInitRe = regexp.MustCompile(`(^|[\\/])__init__\.py$`)
	migrationsRe = regexp.MustCompile(`(^|[\\/])migrations([\\/])`)
	settingsRe   = regexp.MustCompile(`(\b|_)settings(\b|_)`)
	testRe       = regexp.MustCompile(`(\b|_)tests?(\b|_)`)
	modelsRe     = regexp.MustCompile(`(^|[\\/])models([\\/]|\.py)`)
)

// State is the per-file activation context. It is created fresh for every
// input file and never shared. FromImports accumulates during the single
// tree traversal, so a callback only sees imports that appear earlier in
// the file than the node it is inspecting, which is the order imports are
// conventionally written in.
type State struct {
	Settings *Settings
	Filename string
	Src      []byte

	// FromImports maps a dotted module path to the names imported from it
	// at top level, e.g. "django.contrib" -> {"admin"}.
	FromImports map[string]map[string]bool

	// File-shape facts, derived from the filename alone.
	AdminFile      bool
	CommandFile    bool
	DunderInitFile bool
	MigrationsFile bool
	SettingsFile   bool
	TestFile       bool
	ModelsFile     bool
}

// NewState builds the context for one file. The filename facts are cheap
// regexp matches, computed up front.
func NewState(settings *Settings, filename string, src []byte) *State {
	return &State{
		Settings:       settings,
		Filename:       filename,
		Src:            src,
		FromImports:    make(map[string]map[string]bool),
		AdminFile:      adminRe.MatchString(filename),
		CommandFile:    commandsRe.MatchString(filename),
		DunderInitFile: dunderInitRe.MatchString(filename),
		MigrationsFile: migrationsRe.MatchString(filename),
		SettingsFile:   settingsRe.MatchString(filename),
		TestFile:       testRe.MatchString(filename),
		ModelsFile:     modelsRe.MatchString(filename),
	}
}

// ImportedFrom reports whether name was imported from module at top level
// earlier in the file.
func (s *State) ImportedFrom(module, name string) bool {
	return s.FromImports[module][name]
}

// recordImport notes names imported from module.
func (s *State) recordImport(module string, names []string) {
	set := s.FromImports[module]
	if set == nil {
		set = make(map[string]bool)
		s.FromImports[module] = set
	}
	for _, name := range names {
		set[name] = true
	}
}
