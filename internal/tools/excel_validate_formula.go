package tools

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelValidateFormulaArguments struct {
	Formula string `zog:"formula"`
}

var excelValidateFormulaArgumentsSchema = z.Struct(z.Shape{
	"formula": z.String().Required(),
})

func AddExcelValidateFormulaTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_validate_formula",
		mcp.WithDescription("Validate Excel formula syntax without applying it to a workbook"),
		mcp.WithString("formula",
			mcp.Required(),
			mcp.Description("Formula to validate (e.g., \"=SUM(A1:A10)\")"),
		),
	), handleValidateFormula)
}

func handleValidateFormula(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelValidateFormulaArguments{}
	if issues := excelValidateFormulaArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return validateFormula(args.Formula)
}

type ValidateFormulaResponse struct {
	Formula string `json:"formula"`
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
}

func validateFormula(formula string) (*mcp.CallToolResult, error) {
	response := ValidateFormulaResponse{Formula: formula, Valid: true}
	if err := validateFormulaSyntax(formula); err != nil {
		response.Valid = false
		response.Error = err.Error()
	}
	return imcp.NewToolResultJSON(response)
}

var (
	rangeLikePattern      = regexp.MustCompile(`\$?[A-Z]{1,3}\$?\d*:`)
	rangeReferencePattern = regexp.MustCompile(`\$?[A-Z]{1,3}\$?\d+:\$?[A-Z]{1,3}\$?\d+`)
)

// validateFormulaSyntax performs static checks only. It does not evaluate
// the formula against a workbook.
func validateFormulaSyntax(formula string) error {
	trimmed := strings.TrimSpace(formula)
	if trimmed == "" {
		return fmt.Errorf("formula is empty")
	}
	if !strings.HasPrefix(trimmed, "=") {
		return fmt.Errorf("formula must start with '='")
	}
	body := trimmed[1:]
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("formula has no expression after '='")
	}

	depth := 0
	for _, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("unbalanced parentheses: unexpected ')'")
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced parentheses: %d unclosed '('", depth)
	}

	// only a colon preceded by a reference-shaped prefix indicates a range,
	// so colons inside string literals pass through
	if rangeLikePattern.MatchString(body) && !rangeReferencePattern.MatchString(body) {
		return fmt.Errorf("malformed range reference in formula")
	}

	return nil
}
