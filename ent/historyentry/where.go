// Code generated by ent, DO NOT EDIT.

package historyentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"irms.fjp.io/irms/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldActorID, v))
}

// ResourceID applies equality check predicate on the "resource_id" field. It's identical to ResourceIDEQ.
func ResourceID(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldResourceID, v))
}

// ResourceName applies equality check predicate on the "resource_name" field. It's identical to ResourceNameEQ.
func ResourceName(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldResourceName, v))
}

// Changes applies equality check predicate on the "changes" field. It's identical to ChangesEQ.
func Changes(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldChanges, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldContainsFold(FieldActorID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNotIn(FieldAction, vs...))
}

// ResourceIDEQ applies the EQ predicate on the "resource_id" field.
func ResourceIDEQ(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldResourceID, v))
}

// ResourceIDNEQ applies the NEQ predicate on the "resource_id" field.
func ResourceIDNEQ(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNEQ(FieldResourceID, v))
}

// ResourceIDIn applies the In predicate on the "resource_id" field.
func ResourceIDIn(vs ...string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldIn(FieldResourceID, vs...))
}

// ResourceIDNotIn applies the NotIn predicate on the "resource_id" field.
func ResourceIDNotIn(vs ...string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNotIn(FieldResourceID, vs...))
}

// ResourceIDGT applies the GT predicate on the "resource_id" field.
func ResourceIDGT(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGT(FieldResourceID, v))
}

// ResourceIDGTE applies the GTE predicate on the "resource_id" field.
func ResourceIDGTE(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGTE(FieldResourceID, v))
}

// ResourceIDLT applies the LT predicate on the "resource_id" field.
func ResourceIDLT(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLT(FieldResourceID, v))
}

// ResourceIDLTE applies the LTE predicate on the "resource_id" field.
func ResourceIDLTE(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLTE(FieldResourceID, v))
}

// ResourceIDContains applies the Contains predicate on the "resource_id" field.
func ResourceIDContains(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldContains(FieldResourceID, v))
}

// ResourceIDHasPrefix applies the HasPrefix predicate on the "resource_id" field.
func ResourceIDHasPrefix(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldHasPrefix(FieldResourceID, v))
}

// ResourceIDHasSuffix applies the HasSuffix predicate on the "resource_id" field.
func ResourceIDHasSuffix(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldHasSuffix(FieldResourceID, v))
}

// ResourceIDIsNil applies the IsNil predicate on the "resource_id" field.
func ResourceIDIsNil() predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldIsNull(FieldResourceID))
}

// ResourceIDNotNil applies the NotNil predicate on the "resource_id" field.
func ResourceIDNotNil() predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNotNull(FieldResourceID))
}

// ResourceIDEqualFold applies the EqualFold predicate on the "resource_id" field.
func ResourceIDEqualFold(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEqualFold(FieldResourceID, v))
}

// ResourceIDContainsFold applies the ContainsFold predicate on the "resource_id" field.
func ResourceIDContainsFold(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldContainsFold(FieldResourceID, v))
}

// ResourceNameEQ applies the EQ predicate on the "resource_name" field.
func ResourceNameEQ(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldResourceName, v))
}

// ResourceNameNEQ applies the NEQ predicate on the "resource_name" field.
func ResourceNameNEQ(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNEQ(FieldResourceName, v))
}

// ResourceNameIn applies the In predicate on the "resource_name" field.
func ResourceNameIn(vs ...string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldIn(FieldResourceName, vs...))
}

// ResourceNameNotIn applies the NotIn predicate on the "resource_name" field.
func ResourceNameNotIn(vs ...string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNotIn(FieldResourceName, vs...))
}

// ResourceNameGT applies the GT predicate on the "resource_name" field.
func ResourceNameGT(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGT(FieldResourceName, v))
}

// ResourceNameGTE applies the GTE predicate on the "resource_name" field.
func ResourceNameGTE(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGTE(FieldResourceName, v))
}

// ResourceNameLT applies the LT predicate on the "resource_name" field.
func ResourceNameLT(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLT(FieldResourceName, v))
}

// ResourceNameLTE applies the LTE predicate on the "resource_name" field.
func ResourceNameLTE(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLTE(FieldResourceName, v))
}

// ResourceNameContains applies the Contains predicate on the "resource_name" field.
func ResourceNameContains(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldContains(FieldResourceName, v))
}

// ResourceNameHasPrefix applies the HasPrefix predicate on the "resource_name" field.
func ResourceNameHasPrefix(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldHasPrefix(FieldResourceName, v))
}

// ResourceNameHasSuffix applies the HasSuffix predicate on the "resource_name" field.
func ResourceNameHasSuffix(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldHasSuffix(FieldResourceName, v))
}

// ResourceNameIsNil applies the IsNil predicate on the "resource_name" field.
func ResourceNameIsNil() predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldIsNull(FieldResourceName))
}

// ResourceNameNotNil applies the NotNil predicate on the "resource_name" field.
func ResourceNameNotNil() predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNotNull(FieldResourceName))
}

// ResourceNameEqualFold applies the EqualFold predicate on the "resource_name" field.
func ResourceNameEqualFold(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEqualFold(FieldResourceName, v))
}

// ResourceNameContainsFold applies the ContainsFold predicate on the "resource_name" field.
func ResourceNameContainsFold(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldContainsFold(FieldResourceName, v))
}

// ChangesEQ applies the EQ predicate on the "changes" field.
func ChangesEQ(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEQ(FieldChanges, v))
}

// ChangesNEQ applies the NEQ predicate on the "changes" field.
func ChangesNEQ(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNEQ(FieldChanges, v))
}

// ChangesIn applies the In predicate on the "changes" field.
func ChangesIn(vs ...string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldIn(FieldChanges, vs...))
}

// ChangesNotIn applies the NotIn predicate on the "changes" field.
func ChangesNotIn(vs ...string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNotIn(FieldChanges, vs...))
}

// ChangesGT applies the GT predicate on the "changes" field.
func ChangesGT(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGT(FieldChanges, v))
}

// ChangesGTE applies the GTE predicate on the "changes" field.
func ChangesGTE(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldGTE(FieldChanges, v))
}

// ChangesLT applies the LT predicate on the "changes" field.
func ChangesLT(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLT(FieldChanges, v))
}

// ChangesLTE applies the LTE predicate on the "changes" field.
func ChangesLTE(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldLTE(FieldChanges, v))
}

// ChangesContains applies the Contains predicate on the "changes" field.
func ChangesContains(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldContains(FieldChanges, v))
}

// ChangesHasPrefix applies the HasPrefix predicate on the "changes" field.
func ChangesHasPrefix(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldHasPrefix(FieldChanges, v))
}

// ChangesHasSuffix applies the HasSuffix predicate on the "changes" field.
func ChangesHasSuffix(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldHasSuffix(FieldChanges, v))
}

// ChangesIsNil applies the IsNil predicate on the "changes" field.
func ChangesIsNil() predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldIsNull(FieldChanges))
}

// ChangesNotNil applies the NotNil predicate on the "changes" field.
func ChangesNotNil() predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNotNull(FieldChanges))
}

// ChangesEqualFold applies the EqualFold predicate on the "changes" field.
func ChangesEqualFold(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldEqualFold(FieldChanges, v))
}

// ChangesContainsFold applies the ContainsFold predicate on the "changes" field.
func ChangesContainsFold(v string) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldContainsFold(FieldChanges, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HistoryEntry) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HistoryEntry) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HistoryEntry) predicate.HistoryEntry {
	return predicate.HistoryEntry(sql.NotPredicates(p))
}
