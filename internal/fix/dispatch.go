package fix

// dispatchTable maps a syntax-node kind to the merged callback list of
// every active fixer, in registration order. It is ephemeral, rebuilt per
// file: a pure function of (target version, fixer selection, file state).
type dispatchTable map[string][]VisitFunc

// buildDispatch filters the registry down to the fixers active for this
// file and merges their per-kind callbacks. An empty table is valid and
// makes the whole run a no-op for the file.
func buildDispatch(reg *Registry, state *State) dispatchTable {
	table := make(dispatchTable)
	for _, f := range reg.Fixers() {
		if !state.Settings.Enabled(f.name) {
			continue
		}
		if !f.minVersion.AtMost(state.Settings.TargetVersion) {
			continue
		}
		if f.condition != nil && !f.condition(state) {
			continue
		}
		for _, kind := range f.kinds {
			table[kind] = append(table[kind], f.visitors[kind]...)
		}
	}
	return table
}
