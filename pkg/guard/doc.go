// Package guard provides guard clauses: small, stateless functions placed at
// the top of a function body that check one argument precondition and return
// a typed error when it does not hold.
//
// Every guard returns the checked value unchanged together with an error, so
// a check and its assignment read as one line:
//
//	func NewAccount(owner *User, name string, limit int) (*Account, error) {
//		if _, err := guard.ArgumentBeingNil(owner, guard.WithName("owner")); err != nil {
//			return nil, err
//		}
//		name, err := guard.ArgumentBeingWhitespace(name, guard.WithName("name"))
//		if err != nil {
//			return nil, err
//		}
//		limit, err = guard.ArgumentBeingOutOfRange(limit, 1, 100, guard.WithName("limit"))
//		if err != nil {
//			return nil, err
//		}
//		// ...
//	}
//
// # Families
//
//   - presence and text: ArgumentBeingNil, ArgumentBeingNilOrWhitespace,
//     ArgumentBeingWhitespace, ArgumentBeingNilOrEmpty, ArgumentBeingEmpty
//   - collections: the ...Slice, ...Map and ...Seq variants of the empty checks
//   - ordering: ArgumentBeingLessThanMinimum, ArgumentBeingGreaterThanMaximum,
//     ArgumentBeingOutOfRange and their NilOr, Ptr and Func variants
//   - predicates: ArgumentBeingInvalid, OperationBeingInvalid,
//     ArgumentBeingInvalidEnum
//   - domain: ArgumentBeingUnspecifiedDateTime, ArgumentNotBeingUtcDateTime,
//     ArgumentBeingNilUUID, PlatformNotSupported
//
// Guards named NilOr... treat a nil input as a failure of its own
// (KindNilArgument). The plain and Ptr variants let a nil input pass, leaving
// presence to ArgumentBeingNil.
//
// # Ordering
//
// Ordering guards accept any cmp.Ordered type. Strings are compared byte by
// byte, never with locale rules, so "B" is greater than "A" and "a" is greater
// than "B". Other totally ordered types use the Func variants with their own
// compare function:
//
//	v, err := guard.ArgumentBeingLessThanMinimumFunc(v, minVersion, semver.Version.Compare)
//
// Bounds are inclusive and always required; use the one-sided guards for an
// open range.
//
// # Failures
//
// Failures are *Failure values with a Kind, the optional argument name and
// message, the offending value for KindOutOfRange, and any annotations given
// through WithAnnotations or WithAnnotation. Blank names and messages are
// dropped rather than rendered. A *Failure unwraps to the sentinel of its
// kind:
//
//	if errors.Is(err, guard.ErrOutOfRange) {
//		f, _ := guard.AsFailure(err)
//		log.Printf("rejected %v", f.Value)
//	}
//
// *Failure implements slog.LogValuer, so logging it as an attribute emits a
// structured group. The package itself never logs, retries or recovers.
//
// KindPlatformNotSupported failures are fatal; Must turns them into a panic
// for checks made at start-up.
package guard
