package llm

import "fmt"

const filterSchema = `You convert shopping queries into strict JSON filters for a product search engine.
Return ONLY JSON with this exact schema:

{
  "categories": string[],
  "keywords": string[],
  "price_min": number|null,
  "price_max": number|null,
  "rating_min": number|null,
  "sort_by": "relevance" | "price_asc" | "price_desc" | "rating_desc"
}

Rules about price:
- "under", "below", "less than", "<= $X", "< $X", "max $X" => price_max = X
- "over", "above", "more than", ">= $X", "> $X", "min $X", "at least $X" => price_min = X
- "between $A and $B" or "$A-$B" => price_min = A and price_max = B
- Never set both price_min and price_max to the same X unless the user asked for exactly that price.
- Do not invert these rules.

Other rules:
- Only set rating_min if a numeric threshold is given (e.g., "4+ stars").
- "good reviews" alone => leave rating_min null and set sort_by = "rating_desc".
- If user implies "cheapest", set sort_by="price_asc"; "most expensive" => "price_desc".
- If unknown, leave fields null/empty, but always return valid JSON.

Examples:
Q: "electronics under $100"
A: {"categories":["electronics"],"keywords":[],"price_min":null,"price_max":100,"rating_min":null,"sort_by":"relevance"}

Q: "electronics over $100"
A: {"categories":["electronics"],"keywords":[],"price_min":100,"price_max":null,"rating_min":null,"sort_by":"relevance"}

Q: "women's clothing between $20 and $50 with 4+ stars"
A: {"categories":["women's clothing"],"keywords":[],"price_min":20,"price_max":50,"rating_min":4,"sort_by":"relevance"}`

// BuildFilterPrompt produces the full instruction text for one query.
// Pure function: the template is fixed, only the query is interpolated.
func BuildFilterPrompt(query string) string {
	return fmt.Sprintf("%s\n\nUser query: \"\"\"%s\"\"\"\nReturn JSON now:", filterSchema, query)
}
