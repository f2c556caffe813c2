package analyzer

import "strings"

// ContainsPersonalInfo reports whether the lowercased candidate contains
// the username or the local part of the email. Returns false when neither
// was supplied, so the check passes vacuously without context.
func ContainsPersonalInfo(lower string, ctx Context) bool {
	var fragments []string
	if ctx.Username != "" {
		fragments = append(fragments, strings.ToLower(ctx.Username))
	}
	if ctx.Email != "" {
		local, _, _ := strings.Cut(ctx.Email, "@")
		fragments = append(fragments, strings.ToLower(local))
	}
	for _, f := range fragments {
		if f != "" && strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

// SimilarToOld reports whether the candidate equals the prior secret or
// contains it, case-insensitively. Returns false when no prior secret was
// supplied.
func SimilarToOld(lower, oldPassword string) bool {
	if oldPassword == "" {
		return false
	}
	oldLower := strings.ToLower(oldPassword)
	return lower == oldLower || strings.Contains(lower, oldLower)
}
