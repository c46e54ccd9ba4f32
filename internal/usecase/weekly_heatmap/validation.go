package weekly_heatmap

import "fmt"

// validateRequest валидирует входные данные запроса
// Конфигурация агрегации намеренно не проверяется: ядро отчётности
// не транзакционная система, некорректные настройки дают математически
// определённый (пусть и бессмысленный) результат, а не падение
func validateRequest(req *Request) error {
	if req.RangeStart.IsZero() || req.RangeEnd.IsZero() {
		return fmt.Errorf("%w: range is required", ErrInvalidInput)
	}

	if !req.RangeEnd.After(req.RangeStart) {
		return fmt.Errorf("%w: rangeEnd must be after rangeStart", ErrInvalidRange)
	}

	return nil
}
