package components

// String returns the display name for a Kind.
func (k Kind) String() string {
	names := KindNames()
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// KindNames returns the display names for all kinds.
// The order matches the Kind constants.
func KindNames() []string {
	return []string{"Player", "Enemy", "AttackWave", "Bonus", "Label"}
}

// String returns the display name for an EnemyVariant.
func (v EnemyVariant) String() string {
	names := EnemyVariantNames()
	if int(v) < len(names) {
		return names[v]
	}
	return "Unknown"
}

// EnemyVariantNames returns the display names for all enemy variants.
func EnemyVariantNames() []string {
	return []string{"Weak", "Fast", "Strong"}
}

// EnemyVariantCount returns the number of enemy variants.
func EnemyVariantCount() int {
	return len(EnemyVariantNames())
}

// String returns the display name for a BonusVariant.
func (v BonusVariant) String() string {
	names := BonusVariantNames()
	if int(v) < len(names) {
		return names[v]
	}
	return "Unknown"
}

// BonusVariantNames returns the display names for all bonus variants.
func BonusVariantNames() []string {
	return []string{"Gold", "Health", "Attack"}
}

// BonusVariantCount returns the number of bonus variants.
func BonusVariantCount() int {
	return len(BonusVariantNames())
}

// String returns the display name for a Tier.
func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "Normal"
	case TierLow:
		return "Low"
	case TierCritical:
		return "Critical"
	}
	return "Unknown"
}
