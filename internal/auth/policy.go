package auth

// Authorize decides whether a verified claim may perform an operation that
// requires the given role. The role model is flat: a single equality check,
// no hierarchy and no per-resource ownership.
//
// A nil claim means no authentication happened at all and is reported as
// ErrUnauthenticated, never as ErrForbidden; the two statuses stay distinct
// at every boundary.
func Authorize(claims *Claims, requiredRole string) error {
	if claims == nil {
		return ErrUnauthenticated
	}
	if claims.Role != requiredRole {
		return ErrForbidden
	}
	return nil
}
