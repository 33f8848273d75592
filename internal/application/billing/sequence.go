package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/bill-automation-api/internal/domain"
	"github.com/jhoicas/bill-automation-api/internal/domain/repository"
)

// AllocateInTx resuelve el número de factura dentro de la transacción del caller.
// Con número explícito lo devuelve tal cual sin tocar el contador. Sin él, bloquea la fila
// del contador de la empresa, suma 1 y lo persiste; el bloqueo serializa a los concurrentes
// de la misma empresa hasta el commit.
func AllocateInTx(
	ctx context.Context,
	counterRepo repository.BillCounterRepository,
	companyID, explicit string,
	now time.Time,
) (billNo string, allocated bool, err error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, false, nil
	}
	counter, err := counterRepo.GetForUpdate(ctx, companyID)
	if err != nil {
		return "", false, fmt.Errorf("%w: bloquear contador: %w", domain.ErrPersistence, err)
	}
	counter.LastBillNumber++
	counter.UpdatedAt = now
	if err := counterRepo.Update(ctx, counter); err != nil {
		return "", false, fmt.Errorf("%w: guardar contador: %w", domain.ErrPersistence, err)
	}
	return strconv.FormatInt(counter.LastBillNumber, 10), true, nil
}

// SequenceUseCase consulta del contador fuera del flujo de generación.
// La reserva de números solo ocurre en GenerateBillUseCase, junto con su registro.
type SequenceUseCase struct {
	counterRepo repository.BillCounterRepository
}

// NewSequenceUseCase construye el caso de uso. counterRepo se usa solo para lecturas sin bloqueo.
func NewSequenceUseCase(counterRepo repository.BillCounterRepository) *SequenceUseCase {
	return &SequenceUseCase{counterRepo: counterRepo}
}

// Peek devuelve el último número emitido y el siguiente, sin reservar nada.
func (uc *SequenceUseCase) Peek(ctx context.Context, companyID string) (last, next int64, err error) {
	c, err := uc.counterRepo.Get(ctx, companyID)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: leer contador: %w", domain.ErrPersistence, err)
	}
	return c.LastBillNumber, c.LastBillNumber + 1, nil
}
