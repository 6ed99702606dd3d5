package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath  string
	Driver      string
	DBLocation  string
	DBExists    bool // true = Found, false = Not Found
	ServerAddr  string
	LockTimeout string
	AmountScale int32
	Accounts    int
	TotalFunds  string
	AppDataDir  string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	configPath := data.ConfigPath
	if configPath == "" {
		configPath = pterm.Gray("(defaults)")
	}

	tableData := pterm.TableData{
		{"Configuration File", configPath},
		{"Database Driver", data.Driver},
		{"Database", data.DBLocation},
		{"Database Status", dbStatus},
		{"HTTP Address", data.ServerAddr},
		{"Lock Timeout", data.LockTimeout},
		{"Amount Scale", pterm.Sprint(data.AmountScale)},
		{"Accounts", pterm.Sprint(data.Accounts)},
		{"Total Funds", data.TotalFunds},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
