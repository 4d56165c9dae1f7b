package openai

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/xeipuuv/gojsonschema"
)

const planSystemPrompt = `You are a clinical planning assistant for an aesthetic medicine practice. Return ONLY valid JSON with this schema:
{
  "title": string (short plan title),
  "patient": {"name": string, "age": number, "sex": string} (optional, only if the notes mention them),
  "phases": [
    {
      "title": string (e.g. "Phase 1: Foundation"),
      "treatments": [
        {
          "categoryKey": string (MUST be one of the catalog category keys),
          "treatmentKey": string (MUST be one of the item keys listed under that category),
          "goal": string (1 short sentence, optional),
          "frequency": string (optional),
          "week": string (optional, e.g. "2")
        }
      ]
    }
  ]
}
Use 1-3 phases with 1-4 treatments each. Only reference treatments from the catalog listing in the user message. Keep language simple and non-alarmist. Do not include medical advice or diagnosis.`

const instructionsSystemPrompt = `You are a clinical content assistant for an aesthetic medicine practice. Write 2-4 short patient-facing key instructions for the given treatment as plain sentences separated by newlines. No headings, no bullets, no medical advice or diagnosis.`

// planDraftSchema guards against structurally broken model output before
// it is handed to the suggestion service.
const planDraftSchema = `{
  "type": "object",
  "required": ["title", "phases"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "patient": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "age": {"type": "integer"},
        "sex": {"type": "string"}
      }
    },
    "phases": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["title", "treatments"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "treatments": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["categoryKey", "treatmentKey"],
              "properties": {
                "categoryKey": {"type": "string", "minLength": 1},
                "treatmentKey": {"type": "string", "minLength": 1},
                "goal": {"type": "string"},
                "frequency": {"type": "string"},
                "week": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

// buildPlanUserPrompt lists the tenant's catalog so the model can only
// pick real (categoryKey, treatmentKey) pairs.
func buildPlanUserPrompt(notes string, catalog *entities.CatalogDefinition) string {
	var sb strings.Builder
	sb.WriteString("Catalog (categoryKey: treatmentKey = name):\n")

	categoryKeys := make([]string, 0, len(catalog.Categories))
	for key := range catalog.Categories {
		categoryKeys = append(categoryKeys, key)
	}
	sort.Strings(categoryKeys)

	for _, categoryKey := range categoryKeys {
		category := catalog.Categories[categoryKey]
		for _, item := range category.Items {
			sb.WriteString(fmt.Sprintf("- %s: %s = %s\n", categoryKey, item.Key, item.Name.Resolve("en")))
		}
	}

	sb.WriteString("\nConsultation notes:\n")
	sb.WriteString(notes)
	sb.WriteString("\n")
	return sb.String()
}

func buildInstructionsUserPrompt(treatmentName, goal string) string {
	if strings.TrimSpace(goal) == "" {
		return fmt.Sprintf("Treatment: %s\n", treatmentName)
	}
	return fmt.Sprintf("Treatment: %s\nGoal: %s\n", treatmentName, goal)
}

func parsePlanDraft(data []byte) (*entities.PlanDraft, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(planDraftSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate plan draft: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("plan draft failed validation: %s", strings.Join(details, "; "))
	}

	var draft entities.PlanDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to parse plan draft: %w", err)
	}
	return &draft, nil
}
