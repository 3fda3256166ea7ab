// Code generated by ent, DO NOT EDIT.

package usersettings

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ankur/codedrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldLTE(FieldID, id))
}

// SingletonID applies equality check predicate on the "singleton_id" field. It's identical to SingletonIDEQ.
func SingletonID(v int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldEQ(FieldSingletonID, v))
}

// TierOverride applies equality check predicate on the "tier_override" field. It's identical to TierOverrideEQ.
func TierOverride(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldEQ(FieldTierOverride, v))
}

// SingletonIDEQ applies the EQ predicate on the "singleton_id" field.
func SingletonIDEQ(v int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldEQ(FieldSingletonID, v))
}

// SingletonIDNEQ applies the NEQ predicate on the "singleton_id" field.
func SingletonIDNEQ(v int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldNEQ(FieldSingletonID, v))
}

// SingletonIDIn applies the In predicate on the "singleton_id" field.
func SingletonIDIn(vs ...int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldIn(FieldSingletonID, vs...))
}

// SingletonIDNotIn applies the NotIn predicate on the "singleton_id" field.
func SingletonIDNotIn(vs ...int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldNotIn(FieldSingletonID, vs...))
}

// SingletonIDGT applies the GT predicate on the "singleton_id" field.
func SingletonIDGT(v int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldGT(FieldSingletonID, v))
}

// SingletonIDGTE applies the GTE predicate on the "singleton_id" field.
func SingletonIDGTE(v int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldGTE(FieldSingletonID, v))
}

// SingletonIDLT applies the LT predicate on the "singleton_id" field.
func SingletonIDLT(v int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldLT(FieldSingletonID, v))
}

// SingletonIDLTE applies the LTE predicate on the "singleton_id" field.
func SingletonIDLTE(v int) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldLTE(FieldSingletonID, v))
}

// PreferredTopicsIsNil applies the IsNil predicate on the "preferred_topics" field.
func PreferredTopicsIsNil() predicate.UserSettings {
	return predicate.UserSettings(sql.FieldIsNull(FieldPreferredTopics))
}

// PreferredTopicsNotNil applies the NotNil predicate on the "preferred_topics" field.
func PreferredTopicsNotNil() predicate.UserSettings {
	return predicate.UserSettings(sql.FieldNotNull(FieldPreferredTopics))
}

// TierOverrideEQ applies the EQ predicate on the "tier_override" field.
func TierOverrideEQ(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldEQ(FieldTierOverride, v))
}

// TierOverrideNEQ applies the NEQ predicate on the "tier_override" field.
func TierOverrideNEQ(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldNEQ(FieldTierOverride, v))
}

// TierOverrideIn applies the In predicate on the "tier_override" field.
func TierOverrideIn(vs ...string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldIn(FieldTierOverride, vs...))
}

// TierOverrideNotIn applies the NotIn predicate on the "tier_override" field.
func TierOverrideNotIn(vs ...string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldNotIn(FieldTierOverride, vs...))
}

// TierOverrideGT applies the GT predicate on the "tier_override" field.
func TierOverrideGT(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldGT(FieldTierOverride, v))
}

// TierOverrideGTE applies the GTE predicate on the "tier_override" field.
func TierOverrideGTE(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldGTE(FieldTierOverride, v))
}

// TierOverrideLT applies the LT predicate on the "tier_override" field.
func TierOverrideLT(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldLT(FieldTierOverride, v))
}

// TierOverrideLTE applies the LTE predicate on the "tier_override" field.
func TierOverrideLTE(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldLTE(FieldTierOverride, v))
}

// TierOverrideContains applies the Contains predicate on the "tier_override" field.
func TierOverrideContains(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldContains(FieldTierOverride, v))
}

// TierOverrideHasPrefix applies the HasPrefix predicate on the "tier_override" field.
func TierOverrideHasPrefix(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldHasPrefix(FieldTierOverride, v))
}

// TierOverrideHasSuffix applies the HasSuffix predicate on the "tier_override" field.
func TierOverrideHasSuffix(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldHasSuffix(FieldTierOverride, v))
}

// TierOverrideIsNil applies the IsNil predicate on the "tier_override" field.
func TierOverrideIsNil() predicate.UserSettings {
	return predicate.UserSettings(sql.FieldIsNull(FieldTierOverride))
}

// TierOverrideNotNil applies the NotNil predicate on the "tier_override" field.
func TierOverrideNotNil() predicate.UserSettings {
	return predicate.UserSettings(sql.FieldNotNull(FieldTierOverride))
}

// TierOverrideEqualFold applies the EqualFold predicate on the "tier_override" field.
func TierOverrideEqualFold(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldEqualFold(FieldTierOverride, v))
}

// TierOverrideContainsFold applies the ContainsFold predicate on the "tier_override" field.
func TierOverrideContainsFold(v string) predicate.UserSettings {
	return predicate.UserSettings(sql.FieldContainsFold(FieldTierOverride, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserSettings) predicate.UserSettings {
	return predicate.UserSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserSettings) predicate.UserSettings {
	return predicate.UserSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserSettings) predicate.UserSettings {
	return predicate.UserSettings(sql.NotPredicates(p))
}
