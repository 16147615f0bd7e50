package pertype

// Symbol is the represented type of the symbol leaf schema: an opaque marker
// value identified by its description. It stands in for host-language symbol
// primitives that Go has no native counterpart for.
type Symbol struct {
	Description string
}

// NewSymbol returns a symbol with the given description.
func NewSymbol(description string) Symbol { return Symbol{Description: description} }

func (s Symbol) String() string { return "Symbol(" + s.Description + ")" }
