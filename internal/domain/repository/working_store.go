package repository

// WorkingStore define el contrato del almacén de trabajo: un espacio
// chico y rápido donde vive la copia activa de la sesión y un par de
// punteros. Tolera corrupción (una lectura ilegible equivale a vacío)
// y tiene un techo de tamaño: una escritura que lo excede falla con
// domain.ErrStorageFull sin tocar el valor anterior.
type WorkingStore interface {
	// LoadBlob lee el blob de la sesión. Un blob ausente o corrupto
	// devuelve nil sin error.
	LoadBlob() ([]byte, error)

	// SaveBlob escribe el blob completo de la sesión, respetando el
	// techo de tamaño.
	SaveBlob(datos []byte) error

	// ActiveID devuelve el id de la plantilla activa, o "" si no hay.
	ActiveID() string

	// SetActiveID fija el id de la plantilla activa; con "" lo borra.
	SetActiveID(id string) error

	// LastTemplateID devuelve el puntero legado a la última plantilla
	// usada, que versiones viejas escribían por separado.
	LastTemplateID() string

	// SetLastTemplateID fija el puntero legado.
	SetLastTemplateID(id string) error
}
