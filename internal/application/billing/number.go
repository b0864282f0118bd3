package billing

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/tu-usuario/fieldpro-api/internal/domain"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

const (
	invoiceNumberPrefix = "INV-"
	// Intentos ante colisión del índice único de invoice_number.
	// Con 32 bits de aleatoriedad la colisión es rarísima; el reintento
	// acotado cubre el caso sin bloquear la petición.
	maxNumberAttempts = 3
)

// NewInvoiceNumber genera un número de factura "INV-XXXXXXXX" (8 hex).
// La unicidad real la garantiza el índice UNIQUE de la base, no el
// generador: el caller debe reintentar ante domain.ErrDuplicate.
func NewInvoiceNumber() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// rand.Read sobre el CSPRNG del sistema no falla en la práctica
		panic(fmt.Sprintf("billing: generar número de factura: %v", err))
	}
	return invoiceNumberPrefix + strings.ToUpper(hex.EncodeToString(b[:]))
}

// createWithFreshNumber persiste la factura generando un número nuevo en
// cada intento; reintenta solo ante violación de unicidad.
func createWithFreshNumber(repo repository.InvoiceRepository, inv *entity.Invoice) error {
	var err error
	for i := 0; i < maxNumberAttempts; i++ {
		inv.InvoiceNumber = NewInvoiceNumber()
		err = repo.Create(inv)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return err
		}
	}
	return fmt.Errorf("billing: número de factura en conflicto tras %d intentos: %w", maxNumberAttempts, err)
}
