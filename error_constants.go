package main

const invalidKind = 10
const invalidStatusCode = 11
const invalidOutputFormat = 12

const failedToReadInput = 20
const failedToWriteOutput = 21

const failedToDecodeResponse = 30

const apiReturnedError = 40
const invalidGithubTokenOrAccessDenied = 41
const resourceDoesNotExistOrAccessDenied = 44
const rateLimitExceeded = 49

const failedToReachApi = 50
