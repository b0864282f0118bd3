package entity

import "time"

// Equipment representa un equipo instalado donde el cliente (unidad HVAC,
// caldera, bomba de calor, etc.). Pertenece a exactamente un Customer;
// el scoping por tenant se resuelve a través del cliente dueño.
type Equipment struct {
	ID              int64
	CustomerID      int64
	Make            string
	Model           string
	SerialNumber    string
	Type            string // HVAC, Furnace, AC, Heat Pump, ...
	InstallDate     *time.Time
	WarrantyExpires *time.Time
	Notes           string
	CreatedAt       time.Time
}
