package curve

import "fmt"

var engines = make(map[uint8]Engine)

// Register makes an engine selectable by its curve identifier. It is
// intended to be called from the init function of an engine package, so
// that importing the package is enough to enable the curve. Registering
// two engines under the same identifier is a programming error.
func Register(e Engine) {
	id := e.ID()
	if _, dup := engines[id]; dup {
		panic(fmt.Sprintf("curve: Register called twice for id %#02x", id))
	}
	engines[id] = e
}

// ByID returns the engine registered for the given curve identifier.
func ByID(id uint8) (Engine, error) {
	e, ok := engines[id]
	if !ok {
		return nil, fmt.Errorf("%w: %#02x", ErrUnknownCurve, id)
	}
	return e, nil
}
