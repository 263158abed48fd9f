/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: HTML templates for the X431 converter reports. Provides a clean,
responsive, self-contained page summarizing a batch conversion session and any
column statistics.
*/

package reporting

// reportTemplate is the main HTML template for conversion reports
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            color: #333;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
        }

        .header {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 20px;
            padding: 30px;
            margin-bottom: 30px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
            text-align: center;
        }

        .header h1 {
            color: #4a5568;
            font-size: 2.2rem;
            margin-bottom: 10px;
            font-weight: 700;
        }

        .header p {
            color: #718096;
            font-size: 1rem;
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }

        .stat-card {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 15px;
            padding: 25px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
            text-align: center;
        }

        .stat-card h3 {
            color: #4a5568;
            font-size: 1rem;
            margin-bottom: 10px;
        }

        .stat-card .value {
            font-size: 2rem;
            font-weight: 700;
            color: #2d3748;
        }

        .stat-card .value.ok { color: #38a169; }
        .stat-card .value.bad { color: #e53e3e; }

        .section {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 15px;
            padding: 25px;
            margin-bottom: 30px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
        }

        .section h2 {
            color: #4a5568;
            margin-bottom: 15px;
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        th, td {
            text-align: left;
            padding: 10px 12px;
            border-bottom: 1px solid #e2e8f0;
        }

        th {
            color: #4a5568;
            font-weight: 600;
        }

        tr.failed td { color: #e53e3e; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            <p>Session {{.Summary.SessionID}} &middot; {{.GeneratedAt.Format "2006-01-02 15:04:05"}} &middot; policy: {{.Summary.Policy}}</p>
        </div>

        <div class="stats-grid">
            <div class="stat-card">
                <h3>Files</h3>
                <div class="value">{{len .Summary.Files}}</div>
            </div>
            <div class="stat-card">
                <h3>Succeeded</h3>
                <div class="value ok" id="succeeded">{{.Summary.Succeeded}}</div>
            </div>
            <div class="stat-card">
                <h3>Failed</h3>
                <div class="value bad" id="failed">{{.Summary.Failed}}</div>
            </div>
            <div class="stat-card">
                <h3>Duration</h3>
                <div class="value">{{.Summary.Duration}}</div>
            </div>
        </div>

        <div class="section">
            <h2>Converted Files</h2>
            <table class="files">
                <thead>
                    <tr><th>File</th><th>Output</th><th>Rows</th><th>Columns</th><th>Status</th></tr>
                </thead>
                <tbody>
                {{range .Summary.Files}}
                    <tr{{if .Failed}} class="failed"{{end}}>
                        <td>{{.Path}}</td>
                        <td>{{.OutputPath}}</td>
                        <td>{{.Rows}}</td>
                        <td>{{.Columns}}</td>
                        <td>{{if .Failed}}{{.Error}}{{else}}ok{{end}}</td>
                    </tr>
                {{end}}
                </tbody>
            </table>
        </div>

        {{if .Stats}}
        <div class="section">
            <h2>Column Statistics{{if .StatsFile}} ({{.StatsFile}}){{end}}</h2>
            <table class="stats">
                <thead>
                    <tr><th>Column</th><th>Type</th><th>Values</th><th>Unique</th><th>Min</th><th>Max</th><th>Mean</th></tr>
                </thead>
                <tbody>
                {{range .Stats}}
                    <tr>
                        <td>{{.Name}}</td>
                        <td>{{.Type}}</td>
                        <td>{{.TotalValues}}</td>
                        <td>{{.UniqueValues}}</td>
                        {{if eq .Type "numeric"}}
                        <td>{{printf "%.2f" .Min}}</td>
                        <td>{{printf "%.2f" .Max}}</td>
                        <td>{{printf "%.2f" .Mean}}</td>
                        {{else}}
                        <td>-</td><td>-</td><td>-</td>
                        {{end}}
                    </tr>
                {{end}}
                </tbody>
            </table>
        </div>
        {{end}}

        <div class="header">
            <p>x431-converter {{.Version}}</p>
        </div>
    </div>
</body>
</html>
`
