package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xtreme-academy/cuentas-api/internal/application/persist"
	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
)

// encabezadosCSV fija las columnas de cada colección exportable. El
// orden es el del archivo generado y el esperado al importar sin fila
// de encabezado.
var encabezadosCSV = map[string][]string{
	"ingresos":   {"fecha", "nombre", "concepto", "monto", "medio", "estado", "notas"},
	"gastos":     {"fecha", "concepto", "categoria", "monto", "notas"},
	"cxc":        {"vence", "nombre", "concepto", "monto", "estado", "notas"},
	"cxp":        {"vence", "proveedor", "concepto", "monto", "estado", "notas"},
	"inventario": {"categoria", "producto", "stock", "minimo", "costo"},
}

// CSVUseCase exporta e importa colecciones de la plantilla activa en
// CSV plano.
type CSVUseCase struct {
	co *persist.Coordinator
}

// NewCSVUseCase construye el caso de uso.
func NewCSVUseCase(co *persist.Coordinator) *CSVUseCase {
	return &CSVUseCase{co: co}
}

// ImportarCSVResponse resume una importación: cuántas filas entraron y
// cuántas se omitieron por faltarles datos requeridos.
type ImportarCSVResponse struct {
	Importadas int `json:"importadas"`
	Omitidas   int `json:"omitidas"`
}

// Exportar serializa una colección de la plantilla activa. Devuelve el
// contenido y el nombre de archivo sugerido.
func (uc *CSVUseCase) Exportar(ctx context.Context, coleccion string) ([]byte, string, error) {
	encabezados, ok := encabezadosCSV[coleccion]
	if !ok {
		return nil, "", fmt.Errorf("colección %q no exportable: %w", coleccion, domain.ErrInvalidInput)
	}

	var buf bytes.Buffer
	var nombre string
	err := uc.co.View(ctx, func(t *entity.Plantilla) error {
		nombre = fmt.Sprintf("xtreme-%s-%s.csv", t.Nombre, coleccion)
		w := csv.NewWriter(&buf)
		if err := w.Write(encabezados); err != nil {
			return err
		}
		for _, fila := range filasCSV(t, coleccion) {
			if err := w.Write(fila); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), nombre, nil
}

// Importar agrega filas de un CSV a una colección de la plantilla
// activa. Acepta archivos con o sin fila de encabezado; las filas sin
// los campos requeridos se omiten y se cuentan.
func (uc *CSVUseCase) Importar(ctx context.Context, coleccion string, datos []byte) (*ImportarCSVResponse, error) {
	esperados, ok := encabezadosCSV[coleccion]
	if !ok {
		return nil, fmt.Errorf("colección %q no importable: %w", coleccion, domain.ErrInvalidInput)
	}

	lector := csv.NewReader(bytes.NewReader(datos))
	lector.FieldsPerRecord = -1
	lector.TrimLeadingSpace = true
	filas, err := lector.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("el CSV no trae filas: %w", domain.ErrInvalidInput)
	}

	encabezados, inicio := resolverEncabezados(filas[0], esperados)

	var res ImportarCSVResponse
	err = uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		for _, fila := range filas[inicio:] {
			if filaVacia(fila) {
				continue
			}
			registro := map[string]string{}
			for i, clave := range encabezados {
				if clave == "" || i >= len(fila) {
					continue
				}
				registro[clave] = strings.TrimSpace(fila[i])
			}
			if agregarRegistroCSV(t, coleccion, registro) {
				res.Importadas++
			} else {
				res.Omitidas++
			}
		}
		if res.Importadas == 0 {
			return fmt.Errorf("ninguna fila trajo los datos requeridos: %w", domain.ErrInvalidInput)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// resolverEncabezados decide si la primera fila es encabezado: lo es
// cuando alguna celda coincide con una columna esperada.
func resolverEncabezados(primera, esperados []string) ([]string, int) {
	normalizada := make([]string, len(primera))
	esEncabezado := false
	for i, celda := range primera {
		normalizada[i] = strings.ToLower(strings.TrimSpace(celda))
		for _, esperado := range esperados {
			if normalizada[i] == esperado {
				esEncabezado = true
			}
		}
	}
	if esEncabezado {
		return normalizada, 1
	}
	return esperados, 0
}

func filaVacia(fila []string) bool {
	for _, celda := range fila {
		if strings.TrimSpace(celda) != "" {
			return false
		}
	}
	return true
}

// montoCSV parsea montos con coma o punto decimal; lo ilegible vale 0.
func montoCSV(valor string) decimal.Decimal {
	crudo := strings.TrimSpace(strings.ReplaceAll(valor, ",", "."))
	monto, err := decimal.NewFromString(crudo)
	if err != nil {
		return decimal.Zero
	}
	return monto
}

func enteroCSV(valor string) int {
	return int(montoCSV(valor).IntPart())
}

// agregarRegistroCSV construye la fila de dominio y la agrega si trae
// los campos requeridos de su colección.
func agregarRegistroCSV(t *entity.Plantilla, coleccion string, r map[string]string) bool {
	switch coleccion {
	case "ingresos":
		if r["fecha"] == "" || r["concepto"] == "" {
			return false
		}
		estado := r["estado"]
		if estado == "" {
			estado = entity.EstadoPagado
		}
		t.Ingresos = append(t.Ingresos, entity.Ingreso{
			ID: uuid.New().String(), Fecha: r["fecha"], Nombre: r["nombre"],
			Concepto: r["concepto"], Monto: montoCSV(r["monto"]),
			Medio: r["medio"], Estado: estado, Notas: r["notas"],
		})
	case "gastos":
		if r["fecha"] == "" || r["concepto"] == "" {
			return false
		}
		t.Gastos = append(t.Gastos, entity.Gasto{
			ID: uuid.New().String(), Fecha: r["fecha"], Concepto: r["concepto"],
			Categoria: r["categoria"], Monto: montoCSV(r["monto"]), Notas: r["notas"],
		})
	case "cxc":
		if r["vence"] == "" || r["nombre"] == "" || r["concepto"] == "" {
			return false
		}
		estado := r["estado"]
		if estado == "" {
			estado = entity.EstadoPendiente
		}
		t.Cxc = append(t.Cxc, entity.Cxc{
			ID: uuid.New().String(), Vence: r["vence"], Nombre: r["nombre"],
			Concepto: r["concepto"], Monto: montoCSV(r["monto"]),
			Estado: estado, Notas: r["notas"],
		})
	case "cxp":
		if r["vence"] == "" || r["proveedor"] == "" || r["concepto"] == "" {
			return false
		}
		estado := r["estado"]
		if estado == "" {
			estado = entity.EstadoPendiente
		}
		t.Cxp = append(t.Cxp, entity.Cxp{
			ID: uuid.New().String(), Vence: r["vence"], Proveedor: r["proveedor"],
			Concepto: r["concepto"], Monto: montoCSV(r["monto"]),
			Estado: estado, Notas: r["notas"],
		})
	case "inventario":
		if r["producto"] == "" {
			return false
		}
		// Costo vacío o ilegible queda sin valor, no en cero.
		var costo *decimal.Decimal
		if crudo := strings.TrimSpace(strings.ReplaceAll(r["costo"], ",", ".")); crudo != "" {
			if monto, err := decimal.NewFromString(crudo); err == nil {
				costo = &monto
			}
		}
		t.Inventario = append(t.Inventario, entity.Articulo{
			ID: uuid.New().String(), Categoria: r["categoria"], Producto: r["producto"],
			Stock: enteroCSV(r["stock"]), Minimo: enteroCSV(r["minimo"]), Costo: costo,
		})
	default:
		return false
	}
	return true
}

// filasCSV proyecta la colección a filas de texto en el orden de sus
// encabezados.
func filasCSV(t *entity.Plantilla, coleccion string) [][]string {
	var filas [][]string
	switch coleccion {
	case "ingresos":
		for _, m := range t.Ingresos {
			filas = append(filas, []string{m.Fecha, m.Nombre, m.Concepto, m.Monto.String(), m.Medio, m.Estado, m.Notas})
		}
	case "gastos":
		for _, m := range t.Gastos {
			filas = append(filas, []string{m.Fecha, m.Concepto, m.Categoria, m.Monto.String(), m.Notas})
		}
	case "cxc":
		for _, c := range t.Cxc {
			filas = append(filas, []string{c.Vence, c.Nombre, c.Concepto, c.Monto.String(), c.Estado, c.Notas})
		}
	case "cxp":
		for _, c := range t.Cxp {
			filas = append(filas, []string{c.Vence, c.Proveedor, c.Concepto, c.Monto.String(), c.Estado, c.Notas})
		}
	case "inventario":
		for _, a := range t.Inventario {
			costo := ""
			if a.Costo != nil {
				costo = a.Costo.String()
			}
			filas = append(filas, []string{a.Categoria, a.Producto, fmt.Sprint(a.Stock), fmt.Sprint(a.Minimo), costo})
		}
	}
	return filas
}
