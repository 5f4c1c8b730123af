package observable

import (
	"fmt"

	"github.com/pkg/errors"
)

// ProducerPanicError carries the value a producer panicked with.
type ProducerPanicError struct {
	Value any
}

func (e *ProducerPanicError) Error() string {
	return fmt.Sprintf("observable: producer panicked: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *ProducerPanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func newProducerPanicError(value any) error {
	return errors.WithStack(&ProducerPanicError{Value: value})
}
