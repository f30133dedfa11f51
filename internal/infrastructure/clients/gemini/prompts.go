package gemini

import (
	"fmt"
	"strings"
)

const extractionInstructions = `Você é um assistente de um laboratório de análises clínicas. As imagens anexadas são pedidos médicos de exames laboratoriais.

Liste TODOS os exames solicitados no pedido. Para cada exame, tente encontrar a linha correspondente na tabela de preços abaixo (formato "MNEMÔNICO - DESCRIÇÃO").

Responda SOMENTE com JSON válido neste formato:
{
  "exams": [
    {"name": "nome do exame como está escrito no pedido", "matched": "MNEMÔNICO - DESCRIÇÃO da linha correspondente, ou string vazia se não encontrar"}
  ]
}

Não inclua explicações, apenas o JSON. Se a imagem não for um pedido médico, retorne {"exams": []}.`

// buildExtractionPrompt appends the price list rows so the model can propose
// a canonical match alongside each extracted name.
func buildExtractionPrompt(candidates []string) string {
	var b strings.Builder
	b.WriteString(extractionInstructions)
	if len(candidates) > 0 {
		b.WriteString("\n\nTabela de preços:\n")
		for _, candidate := range candidates {
			fmt.Fprintf(&b, "%s\n", candidate)
		}
	}
	return b.String()
}
