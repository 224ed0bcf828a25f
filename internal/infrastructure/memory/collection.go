// Package memory implementa el almacén en memoria de la tienda: colecciones
// ordenadas con crecimiento por duplicación, secuencias de ids y los
// adaptadores de los puertos de repository. Todo el estado vive lo que dura
// la sesión; no hay persistencia.
package memory

// defaultCapacity capacidad inicial de cada colección cuando la
// configuración no indica otra.
const defaultCapacity = 5

// Collection secuencia ordenada de registros. Conserva el orden de inserción
// salvo compactación explícita por RemoveAt. La capacidad del respaldo se
// duplica cada vez que un Append no cabe; los elementos existentes se copian
// en orden al nuevo respaldo.
type Collection[T any] struct {
	items []T
}

// NewCollection crea una colección vacía con la capacidad inicial dada
// (defaultCapacity si capacity no es positiva).
func NewCollection[T any](capacity int) *Collection[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Collection[T]{items: make([]T, 0, capacity)}
}

// Append agrega item al final, duplicando la capacidad si es necesario.
func (c *Collection[T]) Append(item T) {
	if len(c.items) == cap(c.items) {
		grown := make([]T, len(c.items), cap(c.items)*2)
		copy(grown, c.items)
		c.items = grown
	}
	c.items = append(c.items, item)
}

// RemoveAt elimina el elemento en index desplazando los posteriores una
// posición a la izquierda para mantener la secuencia contigua; O(n).
// index debe estar en [0, Len).
func (c *Collection[T]) RemoveAt(index int) {
	copy(c.items[index:], c.items[index+1:])
	var zero T
	c.items[len(c.items)-1] = zero // no retener el último duplicado
	c.items = c.items[:len(c.items)-1]
}

// Find devuelve el índice del primer elemento que cumple pred, recorriendo
// en orden de inserción, o -1 si ninguno cumple.
func (c *Collection[T]) Find(pred func(T) bool) int {
	for i, item := range c.items {
		if pred(item) {
			return i
		}
	}
	return -1
}

// At devuelve una copia del elemento en index.
func (c *Collection[T]) At(index int) T {
	return c.items[index]
}

// Set reemplaza el elemento en index.
func (c *Collection[T]) Set(index int, item T) {
	c.items[index] = item
}

// Len cantidad de elementos almacenados.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Cap capacidad actual del respaldo.
func (c *Collection[T]) Cap() int {
	return cap(c.items)
}

// All devuelve una copia de todos los elementos en el orden actual.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}
