package web

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/infra/logging"
)

// The return leg of the purchase journey. PayPal redirects the approving
// user back here with the order token and plan parameters in the URL; the
// handler runs reconciliation and renders the outcome. Nothing is kept
// across a reload beyond what the URL itself carries.

func (s *Server) handlePaymentSuccess(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	userID, _ := CurrentUser(ctx)
	q := r.URL.Query()
	token := q.Get("token")
	planID := q.Get("plan_id")
	planName := q.Get("plan_name")

	if token == "" || planID == "" || planName == "" {
		s.renderResult(w, http.StatusBadRequest, false, "Missing payment parameters. Please start again from the pricing page.")
		return
	}
	ctx = logging.WithOrderID(ctx, token)

	result, err := s.activationUC.Activate(ctx, token, userID, planID, planName)
	if err != nil {
		s.log.Error().Err(err).Str("order_id", token).Msg("payment reconciliation failed")
		s.renderResult(w, http.StatusBadGateway, false, "We could not confirm your payment. If you were charged, it will be reconciled shortly.")
		return
	}
	if !result.Success {
		s.renderResult(w, http.StatusOK, false, "Your payment has not completed yet. No changes were made to your account.")
		return
	}

	s.renderResult(w, http.StatusOK, true, "Thank you for upgrading. Your account has been activated with all premium features.")
}

var resultPage = template.Must(template.New("result").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width,initial-scale=1" />
<title>{{if .OK}}Payment Successful{{else}}Payment Result{{end}}</title>
<style>
body{font-family:system-ui,Arial,sans-serif;margin:2rem;}
.card{max-width:560px;border:1px solid #ddd;border-radius:12px;padding:24px;}
.ok{color:#057a55} .fail{color:#b00020}
.btn{display:inline-block;margin-top:16px;padding:10px 16px;border-radius:8px;border:1px solid #888;text-decoration:none}
</style>
</head>
<body>
<div class="card">
  <h2 class="{{if .OK}}ok{{else}}fail{{end}}">{{if .OK}}✅ Payment Successful!{{else}}⚠️ Payment Not Completed{{end}}</h2>
  <p>{{.Msg}}</p>
  <a class="btn" href="/">Start Creating Proposals</a>
  <a class="btn" href="/pricing">View Pricing</a>
</div>
</body>
</html>`))

func (s *Server) renderResult(w http.ResponseWriter, code int, ok bool, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_ = resultPage.Execute(w, struct {
		OK  bool
		Msg string
	}{OK: ok, Msg: msg})
}

var pricingPage = template.Must(template.New("pricing").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width,initial-scale=1" />
<title>Pricing</title>
<style>
body{font-family:system-ui,Arial,sans-serif;margin:2rem;}
.plans{display:flex;gap:16px;flex-wrap:wrap;}
.plan{border:1px solid #ddd;border-radius:12px;padding:24px;width:220px;}
.price{font-size:28px;font-weight:700;}
.small{font-size:12px;color:#666;margin-top:24px;}
</style>
</head>
<body>
<h1>Simple, Transparent Pricing</h1>
<p>Unlock premium features and take your proposals to the next level</p>
<div class="plans">
{{range .Plans}}
  <div class="plan">
    <h2>{{.Name}}</h2>
    <div class="price">${{.Price}}</div>
    <div>per month</div>
  </div>
{{end}}
</div>
<div class="small">All plans include a 14-day money-back guarantee</div>
</body>
</html>`))

func (s *Server) handlePricingPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = pricingPage.Execute(w, struct{ Plans []model.Plan }{Plans: s.planUC.List()})
}

type exportPageData struct {
	ClientName string
	Content    string
	Score      model.ResonanceScore
	CreatedAt  string
}

var exportPage = template.Must(template.New("export").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>Proposal for {{.ClientName}}</title>
<style>
body{font-family:Georgia,serif;max-width:720px;margin:2rem auto;line-height:1.6;}
pre{white-space:pre-wrap;font-family:inherit;}
.meta{color:#666;font-size:14px;border-bottom:1px solid #ddd;padding-bottom:12px;margin-bottom:24px;}
</style>
</head>
<body>
<div class="meta">
  Proposal for {{.ClientName}} · {{.CreatedAt}} ·
  Resonance: warmth {{.Score.Warmth}}, clarity {{.Score.Clarity}}, confidence {{.Score.Confidence}}
</div>
<pre>{{.Content}}</pre>
</body>
</html>`))
