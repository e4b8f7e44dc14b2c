package packing

import (
	"fmt"
	"strings"

	"github.com/leora-investor/investor-os-api/internal/domain"
)

// Dash é o travessão (U+2014) usado para todo campo ausente ou em branco.
const Dash = "—"

// NonEmptyOrDash retorna o valor sem alteração, ou Dash se estiver vazio ou só com espaços.
func NonEmptyOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return Dash
	}
	return value
}

// NonEmptyOrDashPtr é NonEmptyOrDash para campos anuláveis.
func NonEmptyOrDashPtr(value *string) string {
	if value == nil {
		return Dash
	}
	return NonEmptyOrDash(*value)
}

// SnapshotDisplayLabel formata "{month} · {kind} · {projectKey}".
func SnapshotDisplayLabel(snapshot *domain.Snapshot) string {
	month, kind, projectKey := snapshotHeader(snapshot)
	return fmt.Sprintf("%s · %s · %s", month, kind, projectKey)
}

// SnapshotMetaLines retorna as sete linhas de metadados, sempre nesta ordem.
func SnapshotMetaLines(snapshot *domain.Snapshot) []string {
	if snapshot == nil {
		return EmptyMetaLines()
	}

	id := NonEmptyOrDash(snapshot.ID)
	idShort := Dash
	if id != Dash {
		idShort = lastRunes(id, 6)
	}

	return []string{
		"- snapshot_id: " + id,
		"- snapshot_id_short: " + idShort,
		"- snapshot_month: " + NonEmptyOrDash(snapshot.SnapshotMonth),
		"- snapshot_kind: " + NonEmptyOrDash(string(snapshot.SnapshotKind)),
		"- project_key: " + NonEmptyOrDashPtr(snapshot.ProjectKey),
		"- created_at: " + NonEmptyOrDash(snapshot.CreatedAt),
		"- label: " + NonEmptyOrDashPtr(snapshot.Label),
	}
}

// EmptyMetaLines são as linhas de metadados de um snapshot inexistente.
func EmptyMetaLines() []string {
	return []string{
		"- snapshot_id: " + Dash,
		"- snapshot_id_short: " + Dash,
		"- snapshot_month: " + Dash,
		"- snapshot_kind: " + Dash,
		"- project_key: " + Dash,
		"- created_at: " + Dash,
		"- label: " + Dash,
	}
}

func snapshotHeader(snapshot *domain.Snapshot) (month, kind, projectKey string) {
	if snapshot == nil {
		return Dash, Dash, Dash
	}
	return NonEmptyOrDash(snapshot.SnapshotMonth),
		NonEmptyOrDash(string(snapshot.SnapshotKind)),
		NonEmptyOrDashPtr(snapshot.ProjectKey)
}

func positionText(position *domain.InvestorPosition) (summary, narrative string) {
	if position == nil {
		return Dash, Dash
	}
	return NonEmptyOrDashPtr(position.SummaryText), NonEmptyOrDashPtr(position.NarrativeText)
}

// lastRunes corta pelo fim sem quebrar caracteres multibyte.
func lastRunes(value string, n int) string {
	runes := []rune(value)
	if len(runes) <= n {
		return value
	}
	return string(runes[len(runes)-n:])
}
