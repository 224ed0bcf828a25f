package memory

import "github.com/tu-usuario/inventario/internal/domain/entity"

// Config parámetros de construcción del almacén.
type Config struct {
	Name            string // nombre de la tienda
	TaxID           string // RIF de la tienda
	InitialCapacity int    // capacidad inicial por colección; 0 usa el default
}

// Store agregado único que posee las cuatro colecciones y sus secuencias de
// ids. Se construye explícitamente y se pasa a cada adaptador de repositorio;
// nunca es un singleton de paquete, de modo que cada test (o cada sesión)
// puede tener su propio almacén aislado.
//
// El acceso es estrictamente secuencial: el almacén no toma locks y no debe
// compartirse entre goroutines.
type Store struct {
	name  string
	taxID string

	products     *Collection[entity.Product]
	suppliers    *Collection[entity.Supplier]
	customers    *Collection[entity.Customer]
	transactions *Collection[entity.Transaction]

	productSeq     *Sequence
	supplierSeq    *Sequence
	customerSeq    *Sequence
	transactionSeq *Sequence
}

// NewStore crea un almacén vacío.
func NewStore(cfg Config) *Store {
	return &Store{
		name:           cfg.Name,
		taxID:          cfg.TaxID,
		products:       NewCollection[entity.Product](cfg.InitialCapacity),
		suppliers:      NewCollection[entity.Supplier](cfg.InitialCapacity),
		customers:      NewCollection[entity.Customer](cfg.InitialCapacity),
		transactions:   NewCollection[entity.Transaction](cfg.InitialCapacity),
		productSeq:     NewSequence(),
		supplierSeq:    NewSequence(),
		customerSeq:    NewSequence(),
		transactionSeq: NewSequence(),
	}
}

// Name nombre de la tienda.
func (s *Store) Name() string { return s.name }

// TaxID RIF de la tienda.
func (s *Store) TaxID() string { return s.taxID }
