// Package logger is a small wrapper around log/slog for services that use
// guard clauses. It builds a *slog.Logger from functional options and adds
// attribute helpers that render guard failures as structured groups.
//
// Guards never log; the caller decides whether a rejected call is worth a
// record. LogFailure picks the level from the failure kind (Warn for argument
// problems, Error for fatal platform failures and foreign errors):
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//
//	if _, err := guard.ArgumentBeingOutOfRange(qty, 1, 100, guard.WithName("qty")); err != nil {
//	    logger.LogFailure(ctx, log, "order rejected", err)
//	    return err
//	}
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel sets the minimum level.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from context
//     through LogHandlerDecorator on every record.
//
// # Attributes
//
// Failure emits a "guard" group with kind, argument, message, value and
// annotations. Error, Argument and Annotations return an empty Attr for
// empty input so they can be passed without a nil check.
package logger
