package domain

const (
	// FlagMarker prefixes every flag token.
	FlagMarker = "--"
	// AlwaysFlag is the hook key that applies a hook unconditionally.
	AlwaysFlag = FlagMarker
	// OverwriteAllFlag disables change detection for every building.
	OverwriteAllFlag = FlagMarker + "overwrite-all"
)

// HookEntry is a transform gated by a flag token.
type HookEntry struct {
	Flag      string
	Transform Transform
}

// HookSpec is either Unconditional or Conditional.
type HookSpec interface {
	entries() []HookEntry
}

// Unconditional is the shorthand hook form: a single transform applied to every pipeline.
type Unconditional Transform

func (u Unconditional) entries() []HookEntry {
	if u == nil {
		return nil
	}
	return []HookEntry{{Flag: AlwaysFlag, Transform: Transform(u)}}
}

// Conditional holds transforms keyed by flag token, applied in declaration order.
type Conditional []HookEntry

func (c Conditional) entries() []HookEntry {
	return c
}

// Hooks are the shared transforms applied before (Input) and after (Output) every task.
type Hooks struct {
	Input  HookSpec
	Output HookSpec
}

// HookEntries returns the canonical entries of a hook spec. A nil spec has none.
func HookEntries(spec HookSpec) []HookEntry {
	if spec == nil {
		return nil
	}
	return spec.entries()
}
