package server

import (
	"fmt"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/soralis/excel-mcp-server/internal/tools"
)

// Transport selects how the server talks to its client.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

func TransportValues() []Transport {
	return []Transport{TransportStdio, TransportHTTP}
}

// Config controls how the server is started. Zero values fall back to
// the EXCEL_MCP_* environment variables.
type Config struct {
	Transport Transport
	Port      int
	LogLevel  string
}

type envConfig struct {
	EXCEL_MCP_TRANSPORT Transport
	EXCEL_MCP_PORT      int
	EXCEL_MCP_LOG_LEVEL string
}

var logLevelNames = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}

var envConfigSchema = z.Struct(z.Shape{
	"EXCEL_MCP_TRANSPORT": z.StringLike[Transport]().OneOf(TransportValues()).Default(TransportStdio),
	"EXCEL_MCP_PORT":      z.Int().GT(0).LTE(65535).Default(8007),
	"EXCEL_MCP_LOG_LEVEL": z.String().OneOf(logLevelNames).Default("info"),
})

// LoadConfig resolves the server configuration from the environment.
func LoadConfig() (Config, error) {
	env := envConfig{}
	if issues := envConfigSchema.Parse(zenv.NewDataProvider(), &env); issues != nil {
		return Config{}, fmt.Errorf("invalid environment configuration: %v", z.Issues.SanitizeMap(issues))
	}
	return Config{
		Transport: env.EXCEL_MCP_TRANSPORT,
		Port:      env.EXCEL_MCP_PORT,
		LogLevel:  env.EXCEL_MCP_LOG_LEVEL,
	}, nil
}

type ExcelServer struct {
	server *server.MCPServer
	log    *logrus.Logger
}

func New(version string, log *logrus.Logger) *ExcelServer {
	s := &ExcelServer{log: log}
	s.server = server.NewMCPServer(
		"excel-mcp-server",
		version,
	)
	tools.AddExcelHealthCheckTool(s.server, version)
	tools.AddExcelCreateWorkbookTool(s.server)
	tools.AddExcelWorkbookMetadataTool(s.server)
	tools.AddExcelDescribeSheetsTool(s.server)
	tools.AddExcelCreateSheetTool(s.server)
	tools.AddExcelDeleteSheetTool(s.server)
	tools.AddExcelRenameSheetTool(s.server)
	tools.AddExcelCopySheetTool(s.server)
	tools.AddExcelReadSheetTool(s.server)
	tools.AddExcelReadCellsTool(s.server)
	tools.AddExcelSearchValuesTool(s.server)
	tools.AddExcelWriteToSheetTool(s.server)
	tools.AddExcelWriteFormulaTool(s.server)
	tools.AddExcelUpdateCellTool(s.server)
	tools.AddExcelValidateFormulaTool(s.server)
	tools.AddExcelFormatRangeTool(s.server)
	tools.AddExcelMergeCellsTool(s.server)
	tools.AddExcelUnmergeCellsTool(s.server)
	tools.AddExcelAutofitColumnsTool(s.server)
	tools.AddExcelSetColumnWidthTool(s.server)
	tools.AddExcelSetRowHeightTool(s.server)
	tools.AddExcelAddChartTool(s.server)
	tools.AddExcelCreateTableTool(s.server)
	tools.AddExcelAddDataValidationTool(s.server)
	tools.AddExcelCopyRangeTool(s.server)
	tools.AddExcelClearRangeTool(s.server)
	return s
}

func (s *ExcelServer) Start(config Config) error {
	switch config.Transport {
	case TransportHTTP:
		addr := fmt.Sprintf(":%d", config.Port)
		s.log.WithField("addr", addr).Info("starting streamable HTTP server")
		return server.NewStreamableHTTPServer(s.server).Start(addr)
	case TransportStdio, "":
		s.log.Info("starting stdio server")
		return server.ServeStdio(s.server)
	default:
		return fmt.Errorf("unknown transport: %s", config.Transport)
	}
}
