package optimistic

import "context"

// Command — двухфазная оптимистичная операция: Apply мгновенно меняет
// локальное состояние, Commit фиксирует изменение на бекенде,
// Compensate симметрично откатывает Apply при сбое фиксации.
type Command struct {
	Apply      func()
	Commit     func(ctx context.Context) error
	Compensate func()
}

// Run применяет локальное изменение, затем пытается зафиксировать его.
// При ошибке фиксации откатывает локальное состояние и возвращает ошибку.
func Run(ctx context.Context, cmd Command) error {
	cmd.Apply()

	if err := cmd.Commit(ctx); err != nil {
		cmd.Compensate()
		return err
	}

	return nil
}
