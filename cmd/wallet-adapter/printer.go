package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// Printer 命令输出
//
// json 模式下结果写入 out，授权提示写入 stderr，便于脚本解析。
type Printer struct {
	format string
	out    io.Writer
	notice io.Writer
}

// NewPrinter 创建输出器，未知格式按 text 处理
func NewPrinter(format string, out io.Writer) *Printer {
	if format != outputJSON {
		format = outputText
	}
	p := &Printer{format: format, out: out, notice: out}
	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		// 重定向到文件或管道时去掉颜色转义
		pterm.DisableStyling()
	}
	if format == outputJSON {
		p.notice = os.Stderr
	}
	return p
}

// PrintAuthorization 展示授权页面地址
func (p *Printer) PrintAuthorization(cfg popupInterface.OpenConfig) {
	content := fmt.Sprintf("请在浏览器中打开以下地址完成授权:\n\n%s", cfg.URL)
	if cfg.HeightPx > 0 && cfg.WidthPx > 0 {
		content += fmt.Sprintf("\n\n建议窗口尺寸: %dx%d", cfg.WidthPx, cfg.HeightPx)
	}
	box := pterm.DefaultBox.
		WithTitle("🔐 等待授权").
		WithTitleTopCenter().
		WithBoxStyle(pterm.NewStyle(pterm.FgLightBlue)).
		Sprint(content)
	fmt.Fprintln(p.notice, box)
}

// PrintResult 输出键值结果；rows 按顺序展示
func (p *Printer) PrintResult(title string, rows [][2]string) error {
	if p.format == outputJSON {
		obj := make(map[string]string, len(rows))
		for _, r := range rows {
			obj[r[0]] = r[1]
		}
		return p.writeJSON(obj)
	}

	fmt.Fprint(p.out, pterm.Success.Sprintln(title))
	if len(rows) == 0 {
		return nil
	}
	data := pterm.TableData{{"字段", "值"}}
	for _, r := range rows {
		data = append(data, []string{r[0], r[1]})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("渲染结果表格失败: %w", err)
	}
	fmt.Fprintln(p.out, table)
	return nil
}

// PrintList 输出有序列表结果
func (p *Printer) PrintList(title, key string, items []string) error {
	if p.format == outputJSON {
		return p.writeJSON(map[string][]string{key: items})
	}

	fmt.Fprint(p.out, pterm.Success.Sprintln(title))
	data := pterm.TableData{{"#", key}}
	for i, item := range items {
		data = append(data, []string{fmt.Sprintf("%d", i), item})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("渲染结果表格失败: %w", err)
	}
	fmt.Fprintln(p.out, table)
	return nil
}

// PrintError 输出错误，钱包错误附带类别
func (p *Printer) PrintError(err error) {
	kind := ""
	var we *types.WalletError
	if errors.As(err, &we) {
		kind = string(we.Kind)
	}

	if p.format == outputJSON {
		obj := map[string]string{"error": err.Error()}
		if kind != "" {
			obj["kind"] = kind
		}
		_ = p.writeJSON(obj)
		return
	}
	fmt.Fprint(p.notice, pterm.Error.Sprintln(err.Error()))
}

func (p *Printer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
