package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/marketwise/savings-calculator/internal/domain"
	"github.com/marketwise/savings-calculator/pkg/money"
)

// ConsoleFormatter renders a plain-text savings report for terminal use.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.SavingsResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MARKETING SAVINGS REPORT")
	fmt.Fprintln(&buf, "========================")
	fmt.Fprintf(&buf, "Industry: %s (%s)\n", result.Industry, result.BusinessSize)
	fmt.Fprintf(&buf, "Generated: %s\n", result.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintln(&buf)

	writeBreakdown(&buf, "CURRENT COSTS", result.CurrentCosts)
	fmt.Fprintln(&buf)
	writeBreakdown(&buf, "OUR OFFER", result.OurOffer)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SAVINGS")
	fmt.Fprintf(&buf, "  Monthly:    %s\n", money.FormatUSD(result.Savings.Monthly))
	fmt.Fprintf(&buf, "  Yearly:     %s\n", money.FormatUSD(result.Savings.Yearly))
	fmt.Fprintf(&buf, "  Percentage: %s%%\n", result.Savings.Percentage)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RETURN ON INVESTMENT")
	fmt.Fprintf(&buf, "  Total ROI:      %s%%\n", result.ROI.TotalROI)
	fmt.Fprintf(&buf, "  Payback:        %d months\n", result.ROI.PaybackMonths)
	fmt.Fprintf(&buf, "  Revenue growth: %s/month (%s%%)\n",
		money.FormatUSD(result.ROI.RevenueGrowth.Monthly), result.ROI.RevenueGrowth.Percentage)

	if len(result.Insights) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "INSIGHTS")
		for _, ins := range result.Insights {
			fmt.Fprintf(&buf, "  * %s: %s\n", ins.Title, ins.Message)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "RECOMMENDATIONS")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&buf, "  [%s] %s: %s\n", strings.ToUpper(rec.Priority), rec.Title, rec.Description)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "WARNINGS")
		for _, w := range result.Warnings {
			fmt.Fprintf(&buf, "  ! %s\n", w)
		}
	}

	return buf.Bytes(), nil
}

func writeBreakdown(buf *bytes.Buffer, title string, cb domain.CostBreakdown) {
	fmt.Fprintln(buf, title)
	fmt.Fprintf(buf, "  Marketer:    %s/month\n", money.FormatUSD(cb.Marketer.Monthly))
	fmt.Fprintf(buf, "  Tools:       %s/month\n", money.FormatUSD(cb.Tools.Monthly))
	for _, tool := range cb.Tools.PerTool {
		fmt.Fprintf(buf, "    - %-28s %s\n", tool.Name, money.FormatUSD(tool.Monthly))
	}
	fmt.Fprintf(buf, "  Advertising: %s/month\n", money.FormatUSD(cb.Advertising.Monthly))
	if !cb.Misc.Monthly.IsZero() {
		fmt.Fprintf(buf, "  Other:       %s/month\n", money.FormatUSD(cb.Misc.Monthly))
	}
	fmt.Fprintf(buf, "  Total:       %s/month (%s/year)\n",
		money.FormatUSD(cb.Total.Monthly), money.FormatUSD(cb.Total.Yearly))
}
