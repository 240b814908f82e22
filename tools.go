package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	util "EnrichAnalysis/pkg/enrichment"
	"EnrichAnalysis/pkg/wechatwork"
)

// resolve joins name onto the results directory unless it is already
// absolute.
func resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(*resultsDir, name)
}

// Notify posts the run summary to the analysts' WeChat Work group when
// -webhook is set.
func Notify(c *util.Comparison) {
	if *webhook == "" {
		return
	}

	var md strings.Builder
	md.WriteString("## 富集方法比较完成\n")
	fmt.Fprintf(&md, "> %s\n\n", c.OutputCSV)
	for _, s := range util.SummaryLines {
		fmt.Fprintf(&md, "- %s: **%d**\n", s.Label, c.Stats[s.Key])
	}

	if err := wechatwork.NewSender(*webhook).SendMarkdown(md.String()); err != nil {
		slog.Error("notify", "err", err)
	}
}
