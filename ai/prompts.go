package ai

import "fmt"

// sqlPromptTemplate is the fixed synthesis instruction. It states the
// allowed query shape, embeds the schema summary verbatim, gives worked
// examples, and ends with the literal user question.
const sqlPromptTemplate = `You are an expert SQL query generator for ESG (Environmental, Social, Governance) data from steel manufacturing operations.

Database Schema:
%s

Your task is to convert natural language questions into valid SQLite queries.

Rules:
1. Only generate SELECT statements
2. Use proper SQLite syntax
3. Handle case-insensitive column matching
4. Use appropriate JOINs when needed
5. Add sensible LIMIT clauses for large datasets (default 100)
6. Return only the SQL query, no explanations
7. If the question is unclear, make reasonable assumptions
8. Use column aliases for better readability

Examples:
- "Show me steel production data" → "SELECT * FROM production LIMIT 100"
- "What was the total CO2 emission?" → "SELECT SUM(total_co2) as total_co2_emissions FROM emission"
- "Show monthly steel production" → "SELECT April, May, June, July, August, September, October, November, December, January, February, March FROM production WHERE Parameter LIKE '%%steel%%production%%'"

Question: %s

SQL Query:`

// buildSQLPrompt renders the synthesis instruction for one question.
func buildSQLPrompt(question string, schema SchemaSummary) string {
	return fmt.Sprintf(sqlPromptTemplate, schema.Text(), question)
}

// QuerySuggestions are canned starter questions surfaced to users.
func QuerySuggestions() []string {
	return []string{
		"Show me steel production data for the last 6 months",
		"What are the total CO2 emissions?",
		"Show water consumption trends",
		"What was the highest monthly steel output?",
		"Show me renewable energy usage",
		"What types of waste were generated?",
		"Show power consumption data",
		"What are the emission trends by month?",
		"Show me fuel consumption by type",
		"What is the equipment efficiency data?",
	}
}
