package nsid

// Namespace identifies one side of the collection mapping.
type Namespace string

const (
	// NamespaceLegacy selects the com.spores.garden.* collection names.
	NamespaceLegacy Namespace = "legacy"

	// NamespaceCurrent selects the garden.spores.* collection names
	// records are migrated to.
	NamespaceCurrent Namespace = "current"
)

// String returns the string representation of the namespace.
func (n Namespace) String() string {
	return string(n)
}

// RKeySelf is the record key singleton kinds are stored under. Each
// account holds at most one record per singleton collection.
const RKeySelf = "self"

// Kind describes one logical record kind in the mapping table.
type Kind struct {
	// Name is the short logical name of the kind.
	Name string

	// Legacy is the collection the kind was originally written under.
	Legacy string

	// Current is the collection the kind is migrated to.
	Current string

	// Singleton marks kinds stored as a single record under RKeySelf.
	// All other kinds hold any number of records with caller-assigned
	// keys.
	Singleton bool
}

// table is the full mapping in its fixed order. Order is part of the
// contract: migration walks kinds top to bottom, so reordering entries
// changes the sequence of observable writes.
var table = []Kind{
	{Name: "config", Legacy: "com.spores.garden.config", Current: "garden.spores.config", Singleton: true},
	{Name: "layout", Legacy: "com.spores.garden.layout", Current: "garden.spores.layout", Singleton: true},
	{Name: "profile", Legacy: "com.spores.garden.profile", Current: "garden.spores.profile", Singleton: true},
	{Name: "section", Legacy: "com.spores.garden.section", Current: "garden.spores.section"},
	{Name: "text", Legacy: "com.spores.garden.text", Current: "garden.spores.text"},
	{Name: "image", Legacy: "com.spores.garden.image", Current: "garden.spores.image"},
	{Name: "flower", Legacy: "com.spores.garden.flower", Current: "garden.spores.flower"},
	{Name: "takenFlower", Legacy: "com.spores.garden.takenFlower", Current: "garden.spores.takenFlower"},
	{Name: "spore", Legacy: "com.spores.garden.spore", Current: "garden.spores.spore"},
}

var (
	legacyToCurrent = make(map[string]string, len(table))
	currentToLegacy = make(map[string]string, len(table))
)

func init() {
	for _, k := range table {
		legacyToCurrent[k.Legacy] = k.Current
		currentToLegacy[k.Current] = k.Legacy
	}
}

// Kinds returns the mapping table in its fixed order. The returned
// slice is a copy; callers may modify it freely.
func Kinds() []Kind {
	out := make([]Kind, len(table))
	copy(out, table)
	return out
}

// MapCollection maps a collection name onto the target namespace.
// Names outside the mapping table are returned unchanged, as is any
// name already in the target namespace. The mapping is its own
// inverse: mapping a known name to current and back to legacy yields
// the original name.
func MapCollection(name string, target Namespace) string {
	switch target {
	case NamespaceCurrent:
		if mapped, ok := legacyToCurrent[name]; ok {
			return mapped
		}
	case NamespaceLegacy:
		if mapped, ok := currentToLegacy[name]; ok {
			return mapped
		}
	}
	return name
}
