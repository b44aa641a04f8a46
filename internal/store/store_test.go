package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itael/inventory-products-api/internal/domain"
	"github.com/itael/inventory-products-api/internal/domain/entity"
	"github.com/itael/inventory-products-api/internal/domain/repository"
	"github.com/itael/inventory-products-api/internal/infrastructure/kvstore"
	"github.com/itael/inventory-products-api/internal/store"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(value string) decimal.Decimal {
	d, _ := decimal.NewFromString(value)
	return d
}

// newProductStore construye un store de productos sin latencia sobre el
// adaptador dado (nil = solo semillas).
func newProductStore(t *testing.T, kv repository.KVStore) *store.ProductStore {
	t.Helper()
	return store.NewProductStore(context.Background(), store.Options{KV: kv})
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga y semillas
// ──────────────────────────────────────────────────────────────────────────────

// Sin adaptador el store arranca con las semillas y las mutaciones viven solo
// en memoria.
func TestStore_SinAdaptadorAdoptaSemillas(t *testing.T) {
	s := newProductStore(t, nil)
	assert.Equal(t, 3, s.Len(), "las semillas traen 3 productos")

	_, ok := s.GetByID("1")
	assert.True(t, ok, "el producto semilla con id 1 debe existir")
}

// Con adaptador vacío el store adopta las semillas y las persiste de
// inmediato, de modo que la siguiente carga no vuelva a sembrar.
func TestStore_AdaptadorVacioSiembraYPersiste(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	_ = newProductStore(t, kv)

	raw, err := kv.Get(ctx, repository.KeyProducts)
	require.NoError(t, err, "las semillas deben quedar persistidas tras la primera carga")

	var persisted []entity.Product
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Len(t, persisted, 3)
}

// JSON corrupto bajo la clave de la colección no es fatal: se recuperan las
// semillas y se sobreescribe el documento dañado.
func TestStore_JSONCorruptoRecuperaSemillas(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(ctx, repository.KeyProducts, []byte("{esto no es json[")))

	s := newProductStore(t, kv)
	assert.Equal(t, 3, s.Len(), "tras datos corruptos el store debe contener las semillas")

	raw, err := kv.Get(ctx, repository.KeyProducts)
	require.NoError(t, err)
	var persisted []entity.Product
	require.NoError(t, json.Unmarshal(raw, &persisted),
		"el documento corrupto debe haberse reemplazado por JSON válido")
	assert.Len(t, persisted, 3)
}

// Una colección persistida válida gana sobre las semillas.
func TestStore_ColeccionPersistidaGanaSobreSemillas(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	first := newProductStore(t, kv)
	_, err := first.Create(ctx, entity.Product{Name: "Mango Tango", Account: "PRD-009", OriginalPrice: dec("10"), UnitOfMeasure: entity.UnitPint})
	require.NoError(t, err)

	second := newProductStore(t, kv)
	assert.Equal(t, 4, second.Len(), "la segunda carga debe ver el producto creado, no solo semillas")

	// Las fechas sobreviven el viaje por JSON como time.Time reales.
	reloaded, ok := second.GetByID("1")
	require.True(t, ok)
	original, _ := first.GetByID("1")
	assert.True(t, reloaded.CreatedAt.Equal(original.CreatedAt))
	assert.True(t, reloaded.UpdatedAt.Equal(original.UpdatedAt))
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

// Create asigna un id único y estampa createdAt/updatedAt.
func TestStore_CreateAsignaIDYTimestamps(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t, nil)

	created, err := s.Create(ctx, entity.Product{Name: "Pistachio", Account: "PRD-010", OriginalPrice: dec("12"), UnitOfMeasure: entity.UnitScoop})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID, "create debe asignar un id")
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt, "en la creación ambos timestamps coinciden")

	for _, p := range s.Snapshot() {
		if p.ID == created.ID {
			return
		}
	}
	t.Fatal("el producto creado debe estar en el snapshot")
}

// Update de un id inexistente devuelve ErrNotFound sin tocar la colección.
func TestStore_UpdateInexistenteNoMuta(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t, nil)
	before := s.Snapshot()

	_, err := s.Update(ctx, "no-existe", func(p *entity.Product) { p.Name = "x" })
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before, s.Snapshot(), "la colección debe quedar intacta")
}

// Update nunca cambia el id ni el createdAt, solo refresca updatedAt.
func TestStore_UpdatePreservaIDYCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t, nil)

	original, ok := s.GetByID("1")
	require.True(t, ok)

	updated, err := s.Update(ctx, "1", func(p *entity.Product) {
		p.ID = "otro-id" // un apply malicioso no puede cambiar el id
		p.Name = "Vanilla Deluxe"
	})
	require.NoError(t, err)

	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(original.UpdatedAt), "updatedAt debe avanzar")
	assert.Equal(t, "Vanilla Deluxe", updated.Name)
}

// Delete de un id inexistente devuelve ErrNotFound con la colección intacta.
func TestStore_DeleteInexistenteNoMuta(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t, nil)

	err := s.Delete(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 3, s.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Suscripción
// ──────────────────────────────────────────────────────────────────────────────

// Subscribe entrega el snapshot actual de inmediato y uno fresco tras cada
// mutación; cancelar corta la entrega.
func TestStore_SubscribeEmiteInmediatoYTrasMutacion(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t, nil)

	var emissions [][]entity.Product
	cancel := s.Subscribe(func(items []entity.Product) {
		emissions = append(emissions, items)
	})

	require.Len(t, emissions, 1, "el listener recibe el snapshot actual al suscribirse")
	assert.Len(t, emissions[0], 3)

	_, err := s.Create(ctx, entity.Product{Name: "Coconut", Account: "PRD-011", OriginalPrice: dec("9"), UnitOfMeasure: entity.UnitQuart})
	require.NoError(t, err)
	require.Len(t, emissions, 2, "cada mutación difunde un snapshot fresco")
	assert.Len(t, emissions[1], 4)

	cancel()
	require.NoError(t, s.Delete(ctx, "1"))
	assert.Len(t, emissions, 2, "tras cancelar no llegan más emisiones")
}

// Las emisiones son copias: mutar el slice recibido no afecta al store.
func TestStore_EmisionesSonCopias(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t, nil)

	cancel := s.Subscribe(func(items []entity.Product) {
		for i := range items {
			items[i].Name = "mutado"
		}
	})
	defer cancel()

	_, err := s.Create(ctx, entity.Product{Name: "Lemon", Account: "PRD-012", OriginalPrice: dec("7"), UnitOfMeasure: entity.UnitPint})
	require.NoError(t, err)

	p, ok := s.GetByID("1")
	require.True(t, ok)
	assert.NotEqual(t, "mutado", p.Name, "el listener muta su copia, no la colección")
}
