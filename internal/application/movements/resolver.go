package movements

import (
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/application/snapshot"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// PlaceholderNoInventory texto para movimientos sin inventario asociado,
// distinto de una referencia que sí existe pero no resuelve.
const PlaceholderNoInventory = "Sin producto asociado"

// ResolveProductName resuelve el nombre a mostrar para un movimiento:
// inventario → producto → nombre. Nunca falla; las referencias colgantes
// degradan a marcadores deterministas:
//
//	sin inventoryId            → "Sin producto asociado"
//	inventario no encontrado   → "Inv#<inventoryId>"
//	producto no encontrado     → "Prod#<productId>"
func ResolveProductName(snap *snapshot.Snapshot, m entity.TaggedMovement) string {
	if m.InventoryID == 0 {
		return PlaceholderNoInventory
	}
	inv, ok := snap.InventoryByID(m.InventoryID)
	if !ok {
		return fmt.Sprintf("Inv#%d", m.InventoryID)
	}
	product, ok := snap.ProductByID(inv.ProductID)
	if !ok {
		return fmt.Sprintf("Prod#%d", inv.ProductID)
	}
	return product.Name
}

// ResolveProductID devuelve el ID de producto efectivo de un movimiento:
// el del inventario referenciado si resuelve, si no el productId que el
// propio movimiento traiga (puede ser cero).
func ResolveProductID(snap *snapshot.Snapshot, m entity.TaggedMovement) int64 {
	if inv, ok := snap.InventoryByID(m.InventoryID); ok {
		return inv.ProductID
	}
	return m.ProductID
}
