package help

const ColdstartYAML = `# mr-verify Quick Start

inputs:
  sources: "Raw documents, default files/pg*"
  results: "Reduced output, one 'word count' line per record, default files/reduce*"

verdicts:
  success: "Every ground-truth word has the same count in the results (exit 0)"
  incorrect: "First divergent word, e.g. 'incorrect fox 1 is not equivalent to fox None' (exit 1)"
  fatal: "Unreadable file or malformed record, no verdict (exit 2)"

commands:
  basic_verify: |
    mr-verify verify

  custom_globs: |
    mr-verify verify --sources "data/pg-*.txt" --results "mr-out-*"

  strict: |
    # Also fail on words that only appear in the results
    mr-verify verify --strict

  html_sources: |
    mr-verify verify --source-format html
    mr-verify verify --source-format article

  report_and_history: |
    mr-verify verify --report reports/run.yaml --detect-language --record
    mr-verify runs --failed
    mr-verify run 5

  inspect_ground_truth: |
    mr-verify top -n 20 --skip-common

config_file: |
  # mr-verify verify --config verify.yaml
  sources: files/pg*
  results: files/reduce*
  source_format: text
  strict: false
  report: reports/latest.yaml
  record: true

words:
  definition: "Maximal runs of ASCII letters; everything else separates words"
  case_sensitive: true
  merge_policy: "Duplicate words across result files: last file (sorted by name) wins"
`
