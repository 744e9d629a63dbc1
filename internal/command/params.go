package command

// ParamMap is an insertion-ordered mapping of flag names to values.
// Reconstruction iterates entries in the order flags first appeared in the
// template, so ordering must be stable: setting an existing name updates the
// value in place without moving it.
type ParamMap struct {
	names  []string
	values map[string]paramValue
}

type paramValue struct {
	value string
	bound bool
}

// NewParamMap creates an empty ParamMap.
func NewParamMap() *ParamMap {
	return &ParamMap{values: make(map[string]paramValue)}
}

// Set binds name to value, preserving the position of an existing name.
func (m *ParamMap) Set(name, value string) {
	if _, exists := m.values[name]; !exists {
		m.names = append(m.names, name)
	}
	m.values[name] = paramValue{value: value, bound: true}
}

// SetUnbound records name as present without a value. A later Set for the
// same name binds it in place.
func (m *ParamMap) SetUnbound(name string) {
	if _, exists := m.values[name]; !exists {
		m.names = append(m.names, name)
	}
	m.values[name] = paramValue{}
}

// Get returns the value for name and whether the name is bound to one.
// An unbound or absent name returns ("", false).
func (m *ParamMap) Get(name string) (string, bool) {
	v, exists := m.values[name]
	if !exists {
		return "", false
	}
	return v.value, v.bound
}

// Has reports whether name is present, bound or not.
func (m *ParamMap) Has(name string) bool {
	_, exists := m.values[name]
	return exists
}

// Names returns the parameter names in insertion order.
func (m *ParamMap) Names() []string {
	return m.names
}

// Len returns the number of parameters.
func (m *ParamMap) Len() int {
	return len(m.names)
}
