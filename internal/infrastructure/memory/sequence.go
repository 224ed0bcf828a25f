package memory

// Sequence contador de ids autoincrementales de un tipo de entidad, sembrado
// en 1. Los ids emitidos nunca se reutilizan ni retroceden; eliminar
// registros no afecta el contador.
type Sequence struct {
	next int
}

// NewSequence crea la secuencia con el primer id en 1.
func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Next devuelve el id actual y avanza el contador.
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}
