package entity

// ClientContext identidad del cliente autenticado para una petición.
//
// Se construye en el middleware de auth a partir de los claims del JWT y se
// pasa explícitamente por casos de uso y gateways: nada lee identidad de
// estado global ni de almacenamiento ambiente.
type ClientContext struct {
	ClientID     int64
	BackendToken string // Bearer token emitido por el API de Inventario
}
